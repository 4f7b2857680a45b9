package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
)

// reportCmd aggregates a period's transactions and snapshots into a report.
type reportCmd struct {
	period string
	date   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a periodic financial report" }
func (*reportCmd) Usage() string {
	return `sparhok report [-period month|quarter|year] [-d <date>]

  Aggregates the period's transactions into income, expenses, savings
  rate and category totals, with the net worth change and a comparison
  against the previous period.

Usage Examples:
# Last month's report.
$ sparhok report -period month -d -1m

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "month", "Report period (day, week, month, quarter, year)")
	f.StringVar(&c.date, "d", "", "Any date within the period (defaults to today)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	period, err := wealth.ParsePeriod(c.period)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	from := on.StartOf(period)
	to := on.EndOf(period).Add(1)
	report, err := wealth.AggregateReport(store.Transactions, store.Snapshots, from, to, store.Profile.Currency)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
