package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sparhok/wealth"
)

// PayoffMarkdown renders a debt payoff plan to a markdown string.
func PayoffMarkdown(p *wealth.PayoffPlan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Debt Payoff Plan (%s)", p.Strategy))

	years := p.Months / 12
	months := p.Months % 12
	horizon := fmt.Sprintf("%d months", p.Months)
	if years > 0 {
		horizon = fmt.Sprintf("%d years %d months", years, months)
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Debt Free"), md.Bold(p.DebtFreeDate.String())},
		Rows: [][]string{
			{"Time to Payoff", horizon},
			{"Extra Monthly Payment", p.ExtraMonthly.String()},
			{"Total Interest Paid", p.TotalInterest.String()},
			{"Total Paid", p.TotalPaid.String()},
		},
	})

	doc.H2("Payoff Order")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Debt", "Paid Off In", "Interest Paid"},
	}
	for _, d := range p.Debts {
		table.Rows = append(table.Rows, []string{
			d.Name,
			fmt.Sprintf("month %d", d.PayoffMonth),
			d.InterestPaid.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
