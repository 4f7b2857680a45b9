package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
	"gopkg.in/yaml.v3"
)

// fireCmd projects the date of financial independence.
type fireCmd struct {
	expenses   float64
	savings    float64
	annual     float64
	ret        float64
	withdrawal float64
	scenarios  string
	date       string
}

func (*fireCmd) Name() string     { return "fire" }
func (*fireCmd) Synopsis() string { return "project the date of financial independence" }
func (*fireCmd) Usage() string {
	return `sparhok fire -expenses <n> -savings <n> -annual <n> [-return <fraction>] [-withdrawal <fraction>] [-scenarios <file>]

  Computes the FIRE number (annual expenses over the withdrawal rate) and
  the years until savings reach it. A YAML scenarios file compares
  what-if variations against the baseline.

Usage Examples:
# The classic 4% rule over 240k of annual spending.
$ sparhok fire -expenses 240000 -savings 800000 -annual 120000

`
}

func (c *fireCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.expenses, "expenses", 0, "Annual expenses")
	f.Float64Var(&c.savings, "savings", 0, "Current invested savings")
	f.Float64Var(&c.annual, "annual", 0, "Annual savings contribution")
	f.Float64Var(&c.ret, "return", 0.07, "Expected annual return as a decimal fraction")
	f.Float64Var(&c.withdrawal, "withdrawal", 0.04, "Safe withdrawal rate as a decimal fraction")
	f.StringVar(&c.scenarios, "scenarios", "", "YAML file with what-if scenarios")
	f.StringVar(&c.date, "d", "", "Projection date (defaults to today)")
}

func (c *fireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	cur := store.Profile.Currency

	inputs := wealth.FIREInputs{
		AnnualExpenses: wealth.M(c.expenses, cur),
		CurrentSavings: wealth.M(c.savings, cur),
		AnnualSavings:  wealth.M(c.annual, cur),
		ExpectedReturn: decimal.NewFromFloat(c.ret),
		WithdrawalRate: decimal.NewFromFloat(c.withdrawal),
	}

	var scenarios []wealth.Scenario
	if c.scenarios != "" {
		data, err := os.ReadFile(c.scenarios)
		if err != nil {
			return fail(err)
		}
		var doc struct {
			Scenarios []wealth.Scenario `yaml:"scenarios"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fail(fmt.Errorf("cannot parse scenarios file %q: %w", c.scenarios, err))
		}
		scenarios = doc.Scenarios
	}

	baseline, results, err := wealth.CompareFIREScenarios(inputs, scenarios, on)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FIREMarkdown(baseline, results))
	return subcommands.ExitSuccess
}
