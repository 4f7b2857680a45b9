package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
)

// processCmd catches up recurring schedules and evaluates achievements and
// milestones against the updated state.
type processCmd struct {
	date string
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "materialize due recurring transactions and evaluate achievements" }
func (*processCmd) Usage() string {
	return `sparhok process [-d <date>]

  Materializes every recurring transaction due up to the given date, then
  evaluates achievements and milestones against the updated figures. A
  schedule behind by several periods catches up in one run.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Process everything due up to this date (defaults to today)")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	created := 0
	for _, r := range store.Recurring {
		for _, occ := range r.GenerateOccurrences(asOf) {
			tx, err := wealth.NewTransaction(store.Profile.ID, occ.Date, occ.Amount, occ.Type, occ.Category)
			if err != nil {
				return fail(err)
			}
			tx.Note = occ.Name
			store.Transactions = append(store.Transactions, tx)
			created++
		}
	}
	if created > 0 {
		fmt.Printf("Materialized %d transactions\n", created)
	}

	// Milestones and achievements read the figures after the catch-up.
	fig := milestoneFiguresOf(store, asOf)
	for _, m := range wealth.CrossMilestones(store.Milestones, fig, asOf) {
		fmt.Printf("Milestone reached: %s\n", m.Name)
	}

	engine := wealth.NewEngine()
	unlocks, err := engine.Evaluate(progressStateOf(store, asOf), store.Achievements, store.Level, asOf)
	if err != nil {
		return fail(err)
	}
	for _, u := range unlocks {
		fmt.Printf("Achievement unlocked: %s (+%d XP)\n", u.Achievement.Title, u.XPAwarded)
		if u.LevelsGained > 0 {
			fmt.Printf("Level up! You are now level %d\n", store.Level.Level)
		}
	}

	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// milestoneFiguresOf derives the current milestone figures from the store.
func milestoneFiguresOf(store *wealth.Store, on wealth.Date) wealth.MilestoneFigures {
	cur := store.Profile.Currency
	fig := wealth.MilestoneFigures{
		NetWorth:  wealth.M(0, cur),
		Savings:   wealth.M(0, cur),
		TotalDebt: wealth.M(0, cur),
	}
	if latest := wealth.LatestSnapshot(store.Snapshots, on); latest != nil {
		fig.NetWorth = latest.NetWorth
	}
	for _, g := range store.Goals {
		fig.Savings = fig.Savings.Add(g.Current)
	}
	for _, d := range store.Debts {
		fig.TotalDebt = fig.TotalDebt.Add(d.Balance)
	}
	return fig
}

// progressStateOf derives the achievement metric values from the store.
func progressStateOf(store *wealth.Store, on wealth.Date) wealth.ProgressState {
	state := wealth.ProgressState{
		SnapshotCount: int64(len(store.Snapshots)),
		GoalsCreated:  int64(len(store.Goals)),
		CurrentStreak: int64(store.Level.CurrentStreak),
		LongestStreak: int64(store.Level.LongestStreak),
		LessonsDone:   int64(store.Level.LessonsCompleted),
		Level:         int64(store.Level.Level),
	}
	for _, g := range store.Goals {
		if g.Status == wealth.GoalCompleted {
			state.GoalsCompleted++
		}
		state.SavedAmount += g.Current.Amount().IntPart()
	}
	for _, d := range store.Debts {
		if d.Status == wealth.DebtPaidOff {
			state.DebtsPaidOff++
		}
	}
	if latest := wealth.LatestSnapshot(store.Snapshots, on); latest != nil {
		state.NetWorth = latest.NetWorth.Amount().IntPart()
		state.EmergencyFund = latest.Assets.Cash.Amount().IntPart()
	}
	return state
}
