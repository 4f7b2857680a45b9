package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sparhok/wealth"
)

// ReportMarkdown renders a period report to a markdown string.
func ReportMarkdown(r *wealth.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Report %s to %s", r.From, r.To.Add(-1)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Net Savings"), md.Bold(r.NetSavings.SignedString())},
		Rows: [][]string{
			{"Total Income", r.TotalIncome.String()},
			{"Total Expenses", r.TotalExpenses.String()},
			{"Savings Rate", r.SavingsRate.String()},
		},
	}
	if r.NetWorthKnown {
		table.Rows = append(table.Rows, []string{"Net Worth", r.NetWorthEnd.String()})
		if !r.NetWorthChange.IsZero() {
			table.Rows = append(table.Rows, []string{"Net Worth Change", r.NetWorthChange.SignedString()})
		}
	}
	doc.Table(table)

	if len(r.ExpenseByCategory) > 0 {
		doc.H2("Expenses by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Total"},
		}
		for _, c := range r.ExpenseByCategory {
			table.Rows = append(table.Rows, []string{c.Category, c.Total.String()})
		}
		doc.Table(table)
	}

	if len(r.IncomeByCategory) > 0 {
		doc.H2("Income by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Total"},
		}
		for _, c := range r.IncomeByCategory {
			table.Rows = append(table.Rows, []string{c.Category, c.Total.String()})
		}
		doc.Table(table)
	}

	if cmp := r.VsPrevious; cmp != nil {
		doc.H2("Versus Previous Period")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Figure", "Delta"},
			Rows: [][]string{
				{"Income", cmp.Income.SignedString()},
				{"Expenses", cmp.Expenses.SignedString()},
				{"Net Savings", cmp.NetSavings.SignedString()},
				{"Change", cmp.Change.SignedString()},
			},
		})
	}

	return doc.String()
}

// TrendMarkdown renders a net worth trend to a markdown string.
func TrendMarkdown(points []wealth.TrendPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Worth Trend")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Net Worth", "Delta", "Change"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.NetWorth.String(),
			p.Delta.SignedString(),
			p.Change.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
