package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/agent"
	"github.com/sparhok/wealth/renderer"
	"google.golang.org/genai"
)

// adviseCmd starts a session with the AI advisor.
type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor about your finances" }
func (*adviseCmd) Usage() string {
	return `sparhok advise [question]

  Starts a session with the AI advisor, grounded in the store's figures.
  With a question it answers once; without, it opens an interactive
  session. Requires Gemini API credentials in the environment.
`
}

func (*adviseCmd) SetFlags(_ *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	coach := agent.NewCoach(storeContext(store))
	a := agent.New(os.Stdout, os.Stdin, coach, agent.NewResearcher())

	var prompts []string
	if initialPrompt != "" {
		prompts = append(prompts, initialPrompt)
	}
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// storeContext renders the store's headline figures as markdown for the
// advisor's system instruction.
func storeContext(store *wealth.Store) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Current Figures\n\n")
	fmt.Fprintf(&b, "Currency: %s\n\n", store.Profile.Currency)

	if points, err := wealth.NetWorthTrend(store.Snapshots); err == nil {
		b.WriteString(renderer.TrendMarkdown(points))
	} else if latest := wealth.LatestSnapshot(store.Snapshots, wealth.Today()); latest != nil {
		fmt.Fprintf(&b, "Net worth: %s on %s\n", latest.NetWorth, latest.Date)
	}
	if len(store.Goals) > 0 {
		b.WriteString(renderer.GoalsMarkdown(store.Goals))
	}
	for _, d := range store.Debts {
		if d.Status == wealth.DebtActive {
			fmt.Fprintf(&b, "- Debt %q: %s at %s%% with minimum payment %s\n",
				d.Name, d.Balance, d.Rate.Mul(decimal.NewFromInt(100)), d.MinPayment)
		}
	}
	return b.String()
}
