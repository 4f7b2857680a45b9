package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
)

// healthCmd computes the composite financial health score.
type healthCmd struct {
	income      float64
	expenses    float64
	emergency   float64
	growth      float64
	lifeCover   bool
	homeCover   bool
	incomeCover bool
	policy      string
	date        string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "compute the financial health score" }
func (*healthCmd) Usage() string {
	return `sparhok health -income <n> -expenses <n> -emergency <n> [-growth <pct>] [-life] [-home] [-income-cover] [-policy <file>]

  Scores savings, debt, investment, budget and protection on a 0-100
  scale and blends them into one number. Debts come from the store; the
  weight policy can be overridden with a YAML file.

Usage Examples:
# A monthly view with six months of expenses saved.
$ sparhok health -income 45000 -expenses 30000 -emergency 180000 -life -home

`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.income, "income", 0, "Monthly income")
	f.Float64Var(&c.expenses, "expenses", 0, "Monthly expenses")
	f.Float64Var(&c.emergency, "emergency", 0, "Emergency fund balance")
	f.Float64Var(&c.growth, "growth", 0, "Recent net worth growth in percent")
	f.BoolVar(&c.lifeCover, "life", false, "Life insurance in place")
	f.BoolVar(&c.homeCover, "home", false, "Home insurance in place")
	f.BoolVar(&c.incomeCover, "income-cover", false, "Income protection in place")
	f.StringVar(&c.policy, "policy", "", "YAML file overriding the dimension weights")
	f.StringVar(&c.date, "d", "", "Date of the score (defaults to today)")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	cur := store.Profile.Currency

	policy := wealth.DefaultScorePolicy()
	if c.policy != "" {
		data, err := os.ReadFile(c.policy)
		if err != nil {
			return fail(err)
		}
		if policy, err = wealth.ParseScorePolicy(data); err != nil {
			return fail(err)
		}
	}

	inputs := wealth.HealthInputs{
		MonthlyIncome:   wealth.M(c.income, cur),
		MonthlyExpenses: wealth.M(c.expenses, cur),
		EmergencyFund:   wealth.M(c.emergency, cur),
		Debts:           store.Debts,
		NetWorthGrowth:  wealth.Percent(c.growth),
		HasLifeCover:    c.lifeCover,
		HasHomeCover:    c.homeCover,
		HasIncomeCover:  c.incomeCover,
	}

	score, err := wealth.ScoreFinancialHealth(inputs, policy, on)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HealthMarkdown(score))
	return subcommands.ExitSuccess
}
