package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
)

// payoffCmd simulates a debt payoff plan over the active debts.
type payoffCmd struct {
	strategy string
	extra    float64
	date     string
}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "simulate a debt payoff plan" }
func (*payoffCmd) Usage() string {
	return `sparhok payoff [-strategy avalanche|snowball] [-extra <n>] [-d <date>]

  Simulates paying down every active debt month by month. The avalanche
  strategy attacks the highest rate first, the snowball the smallest
  balance.

Usage Examples:
# What 1000 extra per month does under each strategy.
$ sparhok payoff -strategy avalanche -extra 1000
$ sparhok payoff -strategy snowball -extra 1000

`
}

func (c *payoffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.strategy, "strategy", "avalanche", "Payoff strategy (avalanche, snowball)")
	f.Float64Var(&c.extra, "extra", 0, "Extra monthly payment on top of the minimums")
	f.StringVar(&c.date, "d", "", "Start date of the plan (defaults to today)")
}

func (c *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	strategy, err := wealth.ParseStrategy(c.strategy)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	var active []*wealth.Debt
	for _, d := range store.Debts {
		if d.Status == wealth.DebtActive {
			active = append(active, d)
		}
	}

	plan, err := wealth.PlanDebtPayoff(active, strategy, wealth.M(c.extra, store.Profile.Currency), on)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PayoffMarkdown(plan))
	return subcommands.ExitSuccess
}
