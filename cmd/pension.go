package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
)

// pensionCmd forecasts retirement income against a replacement target.
type pensionCmd struct {
	age          int
	retireAt     int
	pot          float64
	saving       float64
	income       float64
	statePension float64
	ret          float64
	withdrawal   float64
	replacement  float64
	date         string
}

func (*pensionCmd) Name() string     { return "pension" }
func (*pensionCmd) Synopsis() string { return "forecast retirement income" }
func (*pensionCmd) Usage() string {
	return `sparhok pension -age <n> -retire-at <n> -pot <n> -saving <n> -income <n> [-state <n>] [-replacement <pct>]

  Projects the pension pot at retirement, derives the sustainable monthly
  income, and reports the gap against the replacement target with the
  extra monthly saving that would close it.

Usage Examples:
# Retiring at 67 on 70% of today's income.
$ sparhok pension -age 42 -retire-at 67 -pot 850000 -saving 4500 -income 45000 -state 14000

`
}

func (c *pensionCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "Current age")
	f.IntVar(&c.retireAt, "retire-at", 67, "Retirement age")
	f.Float64Var(&c.pot, "pot", 0, "Current pension savings")
	f.Float64Var(&c.saving, "saving", 0, "Monthly pension saving")
	f.Float64Var(&c.income, "income", 0, "Current monthly income")
	f.Float64Var(&c.statePension, "state", 0, "Expected monthly state pension")
	f.Float64Var(&c.ret, "return", 0.05, "Expected annual return as a decimal fraction")
	f.Float64Var(&c.withdrawal, "withdrawal", 0.04, "Withdrawal rate as a decimal fraction")
	f.Float64Var(&c.replacement, "replacement", 70, "Target income replacement in percent")
	f.StringVar(&c.date, "d", "", "Forecast date (defaults to today)")
}

func (c *pensionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	cur := store.Profile.Currency

	forecast, err := wealth.ForecastPension(wealth.PensionInputs{
		CurrentAge:        c.age,
		RetirementAge:     c.retireAt,
		CurrentPension:    wealth.M(c.pot, cur),
		MonthlySaving:     wealth.M(c.saving, cur),
		MonthlyIncome:     wealth.M(c.income, cur),
		StatePensionEst:   wealth.M(c.statePension, cur),
		ExpectedReturn:    decimal.NewFromFloat(c.ret),
		WithdrawalRate:    decimal.NewFromFloat(c.withdrawal),
		TargetReplacement: wealth.Percent(c.replacement),
	}, on)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PensionMarkdown(forecast))
	return subcommands.ExitSuccess
}
