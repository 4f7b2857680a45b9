package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
)

// addGoalCmd creates a savings goal.
type addGoalCmd struct {
	name     string
	target   float64
	deadline string
	category string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `sparhok add-goal -name <name> -target <amount> [-deadline <date>] [-category <name>]

  Creates an active savings goal.

Usage Examples:
# Save for a down payment by mid 2028.
$ sparhok add-goal -name "Down payment" -target 300000 -deadline 2028-06-30

`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal")
	f.Float64Var(&c.target, "target", 0, "Target amount")
	f.StringVar(&c.deadline, "deadline", "", "Optional deadline date")
	f.StringVar(&c.category, "category", "", "Optional category")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	var deadline wealth.Date
	if c.deadline != "" {
		if deadline, err = wealth.ParseDate(c.deadline); err != nil {
			return fail(err)
		}
	}
	goal, err := wealth.NewGoal(store.Profile.ID, c.name, wealth.M(c.target, store.Profile.Currency), deadline)
	if err != nil {
		return fail(err)
	}
	goal.Category = c.category
	store.Goals = append(store.Goals, goal)
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Created goal %q with target %s\n", goal.Name, goal.Target)
	return subcommands.ExitSuccess
}

// saveCmd contributes an amount toward a goal.
type saveCmd struct {
	goal   string
	amount float64
	date   string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "contribute an amount toward a goal" }
func (*saveCmd) Usage() string {
	return `sparhok save -goal <name> -amount <n> [-d <date>]

  Adds a contribution to a goal. Reaching the target completes the goal.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Name of the goal")
	f.Float64Var(&c.amount, "amount", 0, "Amount to contribute")
	f.StringVar(&c.date, "d", "", "Date of the contribution (defaults to today)")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}

	var goal *wealth.Goal
	for _, g := range store.Goals {
		if g.Name == c.goal {
			goal = g
			break
		}
	}
	if goal == nil {
		return fail(fmt.Errorf("no goal named %q", c.goal))
	}

	completed, err := goal.Contribute(wealth.M(c.amount, store.Profile.Currency), on)
	if err != nil {
		return fail(err)
	}
	store.Level.RecordActivity(on)
	if completed {
		store.Level.GoalsCompleted++
		fmt.Printf("Goal %q completed!\n", goal.Name)
	} else {
		fmt.Printf("Goal %q is now at %s (%s)\n", goal.Name, goal.Current, goal.Progress())
	}

	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// progressCmd lists goals with their progress.
type progressCmd struct{}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "list goals and their progress" }
func (*progressCmd) Usage() string {
	return `sparhok progress

  Lists every goal with saved amount, target and completion percentage.
`
}

func (*progressCmd) SetFlags(_ *flag.FlagSet) {}

func (*progressCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	if len(store.Goals) == 0 {
		fmt.Println("No goals yet. Create one with add-goal.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.GoalsMarkdown(store.Goals))
	return subcommands.ExitSuccess
}
