package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
)

// txCmd records a one-off income or expense.
type txCmd struct {
	amount   float64
	kind     string
	category string
	note     string
	date     string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record an income or expense" }
func (*txCmd) Usage() string {
	return `sparhok tx -amount <n> -type income|expense [-category <name>] [-d <date>]

  Appends a dated transaction to the store. Transactions feed the
  periodic reports.

Usage Examples:
# Groceries yesterday.
$ sparhok tx -amount 850 -type expense -category groceries -d -1d

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount of the transaction")
	f.StringVar(&c.kind, "type", "expense", "Transaction type (income, expense)")
	f.StringVar(&c.category, "category", "", "Category")
	f.StringVar(&c.note, "note", "", "Free-form note")
	f.StringVar(&c.date, "d", "", "Date of the transaction (defaults to today)")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	kind, err := wealth.ParseTransactionType(c.kind)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	tx, err := wealth.NewTransaction(store.Profile.ID, on, wealth.M(c.amount, store.Profile.Currency), kind, c.category)
	if err != nil {
		return fail(err)
	}
	tx.Note = c.note
	store.Transactions = append(store.Transactions, tx)
	store.Level.RecordActivity(on)

	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s on %s\n", kind, tx.Amount, on)
	return subcommands.ExitSuccess
}
