package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/sparhok/wealth"
)

// GoalsMarkdown renders the goal list with progress to a markdown string.
func GoalsMarkdown(goals []*wealth.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Goals")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Goal", "Saved", "Target", "Progress", "Status"},
	}
	for _, g := range goals {
		table.Rows = append(table.Rows, []string{
			g.Name,
			g.Current.String(),
			g.Target.String(),
			g.Progress().String(),
			g.Status.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
