package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sparhok/wealth"
)

// HealthMarkdown renders a financial health score to a markdown string.
func HealthMarkdown(s *wealth.HealthScore) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Health: %d/100", s.Total))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Dimension", "Score"},
		Rows: [][]string{
			{"Savings", fmt.Sprintf("%d", s.Savings)},
			{"Debt", fmt.Sprintf("%d", s.Debt)},
			{"Investment", fmt.Sprintf("%d", s.Investment)},
			{"Budget", fmt.Sprintf("%d", s.Budget)},
			{"Protection", fmt.Sprintf("%d", s.Protection)},
		},
	})

	for _, dim := range []string{"savings", "debt", "investment", "budget", "protection"} {
		notes := s.Breakdown[dim]
		if len(notes) == 0 {
			continue
		}
		doc.H2(fmt.Sprintf("Notes on %s", dim))
		doc.BulletList(notes...)
	}

	if len(s.Recommendations) > 0 {
		doc.H2("Recommendations")
		doc.OrderedList(s.Recommendations...)
	}

	return doc.String()
}
