package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
	"github.com/sparhok/wealth/renderer"
)

// badgesCmd displays the level, streaks and achievement badges.
type badgesCmd struct{}

func (*badgesCmd) Name() string     { return "badges" }
func (*badgesCmd) Synopsis() string { return "display level, streaks and achievement badges" }
func (*badgesCmd) Usage() string {
	return `sparhok badges

  Displays the current level with XP progress, activity streaks, and the
  achievement listing. Secret achievements stay hidden until unlocked.
`
}

func (*badgesCmd) SetFlags(_ *flag.FlagSet) {}

func (*badgesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	engine := wealth.NewEngine()
	printMarkdown(renderer.LevelMarkdown(store.Level, engine.Levels))
	printMarkdown(renderer.BadgesMarkdown(engine.List(store.Achievements)))
	return subcommands.ExitSuccess
}
