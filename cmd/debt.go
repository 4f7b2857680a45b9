package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sparhok/wealth"
)

// addDebtCmd registers a debt to track.
type addDebtCmd struct {
	name       string
	kind       string
	lender     string
	balance    float64
	rate       float64
	minPayment float64
}

func (*addDebtCmd) Name() string     { return "add-debt" }
func (*addDebtCmd) Synopsis() string { return "register a debt to track" }
func (*addDebtCmd) Usage() string {
	return `sparhok add-debt -name <name> -balance <n> -rate <fraction> -min-payment <n> [-type <kind>] [-lender <name>]

  Registers an active debt. The rate is the annual interest rate as a
  decimal fraction, 0.05 means 5%.

Usage Examples:
# A credit card at 18% with a 500 minimum payment.
$ sparhok add-debt -name "Credit card" -balance 25000 -rate 0.18 -min-payment 500

`
}

func (c *addDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the debt")
	f.StringVar(&c.kind, "type", "", "Kind of debt (mortgage, student_loan, car_loan, consumer_loan, credit_card)")
	f.StringVar(&c.lender, "lender", "", "Lender name")
	f.Float64Var(&c.balance, "balance", 0, "Current balance")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate as a decimal fraction")
	f.Float64Var(&c.minPayment, "min-payment", 0, "Monthly minimum payment")
}

func (c *addDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	cur := store.Profile.Currency
	debt, err := wealth.NewDebt(store.Profile.ID, c.name,
		wealth.M(c.balance, cur), decimal.NewFromFloat(c.rate), wealth.M(c.minPayment, cur))
	if err != nil {
		return fail(err)
	}
	debt.Kind = c.kind
	debt.Lender = c.lender
	store.Debts = append(store.Debts, debt)
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Registered debt %q with balance %s\n", debt.Name, debt.Balance)
	return subcommands.ExitSuccess
}

// payCmd applies a payment to a debt.
type payCmd struct {
	debt   string
	amount float64
	date   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "apply a payment to a debt" }
func (*payCmd) Usage() string {
	return `sparhok pay -debt <name> -amount <n> [-d <date>]

  Reduces a debt's balance. Reaching zero marks the debt paid off.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.debt, "debt", "", "Name of the debt")
	f.Float64Var(&c.amount, "amount", 0, "Payment amount")
	f.StringVar(&c.date, "d", "", "Date of the payment (defaults to today)")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	var debt *wealth.Debt
	for _, d := range store.Debts {
		if d.Name == c.debt {
			debt = d
			break
		}
	}
	if debt == nil {
		return fail(fmt.Errorf("no debt named %q", c.debt))
	}

	paidOff, err := debt.ApplyPayment(wealth.M(c.amount, store.Profile.Currency), on)
	if err != nil {
		return fail(err)
	}
	store.Level.RecordActivity(on)
	if paidOff {
		fmt.Printf("Debt %q is paid off!\n", debt.Name)
	} else {
		fmt.Printf("Debt %q is now at %s\n", debt.Name, debt.Balance)
	}

	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
