package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
)

// networthCmd records a net worth snapshot from asset and liability figures.
type networthCmd struct {
	date        string
	cash        float64
	investments float64
	realEstate  float64
	otherAssets float64
	mortgage    float64
	loans       float64
	otherDebts  float64
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "record a net worth snapshot" }
func (*networthCmd) Usage() string {
	return `sparhok networth [-d <date>] -cash <n> [-investments <n>] [-real-estate <n>] [-mortgage <n>] [-loans <n>]

  Aggregates asset and liability line items into a dated snapshot and
  appends it to the store.

Usage Examples:
# Record today's position.
$ sparhok networth -cash 85000 -investments 240000 -mortgage 1200000

`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot (defaults to today)")
	f.Float64Var(&c.cash, "cash", 0, "Cash and bank accounts")
	f.Float64Var(&c.investments, "investments", 0, "Investment accounts")
	f.Float64Var(&c.realEstate, "real-estate", 0, "Real estate value")
	f.Float64Var(&c.otherAssets, "other-assets", 0, "Other assets")
	f.Float64Var(&c.mortgage, "mortgage", 0, "Mortgage balance")
	f.Float64Var(&c.loans, "loans", 0, "Loan balances")
	f.Float64Var(&c.otherDebts, "other-debts", 0, "Other debts")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	cur := store.Profile.Currency
	assets := wealth.Assets{
		Cash:        wealth.M(c.cash, cur),
		Investments: wealth.M(c.investments, cur),
		RealEstate:  wealth.M(c.realEstate, cur),
		Other:       wealth.M(c.otherAssets, cur),
	}
	liabilities := wealth.Liabilities{
		Mortgage: wealth.M(c.mortgage, cur),
		Loans:    wealth.M(c.loans, cur),
		Other:    wealth.M(c.otherDebts, cur),
	}

	snapshot, err := wealth.ComputeNetWorth(store.Profile.ID, on, assets, liabilities)
	if err != nil {
		return fail(err)
	}
	snapshot.Source = "manual"
	store.Snapshots = append(store.Snapshots, snapshot)
	store.Level.RecordActivity(on)

	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded net worth %s on %s\n", snapshot.NetWorth, on)
	return subcommands.ExitSuccess
}

// trendCmd displays the net worth trend over the recorded snapshots.
type trendCmd struct{}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the net worth trend" }
func (*trendCmd) Usage() string {
	return `sparhok trend

  Displays period over period net worth changes across all snapshots.
`
}

func (*trendCmd) SetFlags(_ *flag.FlagSet) {}

func (*trendCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	points, err := wealth.NetWorthTrend(store.Snapshots)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TrendMarkdown(points))
	return subcommands.ExitSuccess
}
