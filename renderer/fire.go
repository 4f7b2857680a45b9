package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sparhok/wealth"
)

// FIREMarkdown renders a financial independence projection, with its
// scenarios when any were compared, to a markdown string.
func FIREMarkdown(r *wealth.FIREResult, scenarios []wealth.ScenarioResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Independence Projection")

	when := fmt.Sprintf("%.1f years (%s)", r.YearsToFIRE, r.FIREDate)
	if r.YearsToFIRE == 0 {
		when = "already reached"
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("FIRE Number"), md.Bold(r.FIRENumber.String())},
		Rows: [][]string{
			{"Years to FIRE", when},
			{"Annual Expenses", r.Inputs.AnnualExpenses.String()},
			{"Current Savings", r.Inputs.CurrentSavings.String()},
			{"Annual Savings", r.Inputs.AnnualSavings.String()},
		},
	})

	if len(scenarios) > 0 {
		doc.H2("Scenarios")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Scenario", "Years to FIRE", "Delta"},
		}
		for _, s := range scenarios {
			if s.Unreachable {
				table.Rows = append(table.Rows, []string{s.Name, "unreachable", ""})
				continue
			}
			table.Rows = append(table.Rows, []string{
				s.Name,
				fmt.Sprintf("%.1f", s.YearsToFIRE),
				fmt.Sprintf("%+.1f", s.DeltaYears),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
