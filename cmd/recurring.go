package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
)

// addRecurringCmd creates a recurring transaction schedule.
type addRecurringCmd struct {
	name      string
	amount    float64
	kind      string
	category  string
	frequency string
	day       int
	start     string
	end       string
}

func (*addRecurringCmd) Name() string     { return "add-recurring" }
func (*addRecurringCmd) Synopsis() string { return "create a recurring transaction schedule" }
func (*addRecurringCmd) Usage() string {
	return `sparhok add-recurring -name <name> -amount <n> -type income|expense -freq <frequency> [-day <n>] [-start <date>] [-end <date>]

  Creates a schedule the process command materializes into transactions.
  Frequencies are daily, weekly, biweekly, monthly and yearly; monthly
  schedules clamp the day to short months.

Usage Examples:
# Salary on the 25th of every month.
$ sparhok add-recurring -name Salary -amount 45000 -type income -freq monthly -day 25

`
}

func (c *addRecurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the schedule")
	f.Float64Var(&c.amount, "amount", 0, "Amount per occurrence")
	f.StringVar(&c.kind, "type", "expense", "Transaction type (income, expense)")
	f.StringVar(&c.category, "category", "", "Category")
	f.StringVar(&c.frequency, "freq", "monthly", "Frequency (daily, weekly, biweekly, monthly, yearly)")
	f.IntVar(&c.day, "day", 0, "Day of month for monthly and yearly schedules")
	f.StringVar(&c.start, "start", "", "Start date (defaults to today)")
	f.StringVar(&c.end, "end", "", "Optional end date")
}

func (c *addRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := parseDateFlag(c.start)
	if err != nil {
		return fail(err)
	}
	kind, err := wealth.ParseTransactionType(c.kind)
	if err != nil {
		return fail(err)
	}
	freq, err := wealth.ParseFrequency(c.frequency)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	r, err := wealth.NewRecurringTransaction(store.Profile.ID, c.name,
		wealth.M(c.amount, store.Profile.Currency), kind, freq, start)
	if err != nil {
		return fail(err)
	}
	r.Category = c.category
	r.DayOfMonth = c.day
	if c.end != "" {
		if r.End, err = wealth.ParseDate(c.end); err != nil {
			return fail(err)
		}
	}
	if err := r.Validate(); err != nil {
		return fail(err)
	}

	store.Recurring = append(store.Recurring, r)
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Created %s schedule %q starting %s\n", freq, r.Name, r.Start)
	return subcommands.ExitSuccess
}
