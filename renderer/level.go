package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/sparhok/wealth"
)

// LevelMarkdown renders a profile's level, XP and streak state to a markdown
// string.
func LevelMarkdown(u *wealth.UserLevel, policy wealth.LevelPolicy) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Level %d", u.Level))

	progress := fmt.Sprintf("%d XP", u.TotalXP)
	if next, ok := policy.NextThreshold(u.TotalXP); ok {
		progress = fmt.Sprintf("%d / %d XP to level %d", u.TotalXP, next, u.Level+1)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Figure", "Value"},
		Rows: [][]string{
			{"Progress", progress},
			{"Current Streak", fmt.Sprintf("%d days", u.CurrentStreak)},
			{"Longest Streak", fmt.Sprintf("%d days", u.LongestStreak)},
			{"Achievements", fmt.Sprintf("%d", u.TotalAchievements)},
			{"Goals Completed", fmt.Sprintf("%d", u.GoalsCompleted)},
		},
	})

	return doc.String()
}

// BadgesMarkdown renders the achievement listing, unlocked badges first.
// Locked secret achievements never appear in the listing at all.
func BadgesMarkdown(listings []wealth.Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Achievements\n\n")

	ConditionalBlock(&b, func(w io.Writer) bool {
		printed := false
		for _, l := range listings {
			if !l.Unlocked {
				continue
			}
			if !printed {
				fmt.Fprintf(w, "## Unlocked\n\n")
				printed = true
			}
			fmt.Fprintf(w, "- **%s** (%s) %s *%s*\n", l.Achievement.Title, l.Achievement.Category, l.Achievement.Description, l.UnlockedAt)
		}
		return printed
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		printed := false
		for _, l := range listings {
			if l.Unlocked {
				continue
			}
			if !printed {
				fmt.Fprintf(w, "\n## Locked\n\n")
				printed = true
			}
			fmt.Fprintf(w, "- %s (%d XP): %s\n", l.Achievement.Title, l.Achievement.XPReward, l.Achievement.Description)
		}
		return printed
	})

	return b.String()
}
