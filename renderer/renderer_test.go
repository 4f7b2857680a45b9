package renderer

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sparhok/wealth"
)

func sek(v float64) wealth.Money { return wealth.M(v, "SEK") }

func TestReportMarkdown(t *testing.T) {
	r := &wealth.Report{
		From:          wealth.NewDate(2026, time.March, 1),
		To:            wealth.NewDate(2026, time.April, 1),
		TotalIncome:   sek(45000),
		TotalExpenses: sek(17000),
		NetSavings:    sek(28000),
		SavingsRate:   wealth.Percent(62.22),
		ExpenseByCategory: []wealth.CategoryTotal{
			{Category: "rent", Total: sek(9000)},
			{Category: "groceries", Total: sek(8000)},
		},
	}

	got := ReportMarkdown(r)
	for _, want := range []string{
		"# Report 2026-03-01 to 2026-03-31",
		"Total Income",
		"## Expenses by Category",
		"rent",
		"62.22%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report markdown is missing %q:\n%s", want, got)
		}
	}
	// No snapshot, no comparison: those sections stay out.
	if strings.Contains(got, "Net Worth") || strings.Contains(got, "Versus Previous") {
		t.Errorf("report markdown has sections without data:\n%s", got)
	}
}

func TestTrendMarkdown(t *testing.T) {
	points := []wealth.TrendPoint{
		{Date: wealth.NewDate(2026, time.February, 1), NetWorth: sek(100000)},
		{Date: wealth.NewDate(2026, time.March, 1), NetWorth: sek(115000), Delta: sek(15000), Change: wealth.Percent(15)},
	}

	got := TrendMarkdown(points)
	for _, want := range []string{"# Net Worth Trend", "2026-03-01", "+15.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("trend markdown is missing %q:\n%s", want, got)
		}
	}
}

func TestLevelMarkdown(t *testing.T) {
	u := wealth.NewUserLevel("p1")
	if _, err := u.AwardXP(150, wealth.DefaultLevelPolicy()); err != nil {
		t.Fatalf("AwardXP() failed: %v", err)
	}

	got := LevelMarkdown(u, wealth.DefaultLevelPolicy())
	for _, want := range []string{"# Level 2", "150 / 250 XP to level 3", "Current Streak"} {
		if !strings.Contains(got, want) {
			t.Errorf("level markdown is missing %q:\n%s", want, got)
		}
	}
}

func TestBadgesMarkdown(t *testing.T) {
	listings := []wealth.Listing{
		{Achievement: wealth.Achievement{Title: "First Steps", Category: "savings", XPReward: 50},
			Unlocked: true, UnlockedAt: wealth.NewDate(2026, time.March, 1)},
		{Achievement: wealth.Achievement{Title: "Millionaire", XPReward: 2000}},
	}

	got := BadgesMarkdown(listings)
	if !strings.Contains(got, "## Unlocked") || !strings.Contains(got, "**First Steps**") {
		t.Errorf("badges markdown is missing the unlocked section:\n%s", got)
	}
	if !strings.Contains(got, "## Locked") || !strings.Contains(got, "Millionaire (2000 XP)") {
		t.Errorf("badges markdown is missing the locked section:\n%s", got)
	}

	// All unlocked: the locked section disappears entirely.
	got = BadgesMarkdown(listings[:1])
	if strings.Contains(got, "## Locked") {
		t.Errorf("badges markdown has an empty locked section:\n%s", got)
	}
}

func TestConditionalBlock(t *testing.T) {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "kept")
		return true
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "discarded")
		return false
	})
	if b.String() != "kept" {
		t.Errorf("got %q, want %q", b.String(), "kept")
	}
}
