package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
)

type initCmd struct {
	currency   string
	occupation string
	industry   string
	efMonths   int
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new wealth store with a profile" }
func (*initCmd) Usage() string {
	return `sparhok init [-currency <code>] [-occupation <name>] [-ef-months <n>]

  Creates the store file with a fresh profile and completes onboarding.

Usage Examples:
# Start tracking in Swedish krona.
$ sparhok init -currency SEK

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "SEK", "Reporting currency code")
	f.StringVar(&c.occupation, "occupation", "", "Occupation, used by the advisor")
	f.StringVar(&c.industry, "industry", "", "Industry, used by the advisor")
	f.IntVar(&c.efMonths, "ef-months", 6, "Emergency fund target in months of expenses")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile := wealth.NewProfile("local", c.currency)
	profile.Occupation = c.occupation
	profile.Industry = c.industry
	if c.efMonths > 0 {
		profile.EmergencyFundTargetMonths = c.efMonths
	}
	profile.CompleteOnboarding()

	store := wealth.NewStore(profile)
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Created store %s with currency %s\n", *storeFile, c.currency)
	return subcommands.ExitSuccess
}
