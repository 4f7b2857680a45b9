package wealth

import (
	"testing"
	"time"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return &Engine{
		Catalog: []Achievement{
			{Code: "first_snapshot", Title: "First Steps", Category: "savings",
				Metric: MetricSnapshotCount, Threshold: 1, XPReward: 50, Active: true},
			{Code: "goal_getter", Title: "Goal Getter", Category: "goals",
				Metric: MetricGoalsCompleted, Threshold: 1, XPReward: 200, Active: true},
			{Code: "millionaire", Title: "Millionaire", Category: "savings",
				Metric: MetricNetWorth, Threshold: 1000000, XPReward: 2000, Secret: true, Active: true},
			{Code: "retired", Title: "Retired", Category: "savings",
				Metric: MetricNetWorth, Threshold: 10000000, XPReward: 5000, Active: false},
		},
		Levels: DefaultLevelPolicy(),
	}
}

func TestEvaluateUnlocks(t *testing.T) {
	engine := testEngine(t)
	level := NewUserLevel("p1")
	records := map[string]*UserAchievement{}
	on := day(2026, time.March, 1)

	unlocks, err := engine.Evaluate(ProgressState{SnapshotCount: 1}, records, level, on)
	if err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}
	if len(unlocks) != 1 {
		t.Fatalf("got %d unlocks, want 1", len(unlocks))
	}
	if unlocks[0].Achievement.Code != "first_snapshot" {
		t.Errorf("unlocked %q, want first_snapshot", unlocks[0].Achievement.Code)
	}
	if unlocks[0].XPAwarded != 50 || level.TotalXP != 50 {
		t.Errorf("XP awarded %d, level total %d, want 50/50", unlocks[0].XPAwarded, level.TotalXP)
	}
	if level.TotalAchievements != 1 {
		t.Errorf("total achievements = %d, want 1", level.TotalAchievements)
	}
}

func TestEvaluateExactlyOnce(t *testing.T) {
	engine := testEngine(t)
	level := NewUserLevel("p1")
	records := map[string]*UserAchievement{}
	on := day(2026, time.March, 1)
	state := ProgressState{SnapshotCount: 5}

	if _, err := engine.Evaluate(state, records, level, on); err != nil {
		t.Fatalf("first evaluation failed: %v", err)
	}
	xpAfterFirst := level.TotalXP

	// Re-evaluating the same state pays nothing twice.
	unlocks, err := engine.Evaluate(state, records, level, on.Add(1))
	if err != nil {
		t.Fatalf("second evaluation failed: %v", err)
	}
	if len(unlocks) != 0 {
		t.Errorf("second evaluation unlocked %d achievements, want 0", len(unlocks))
	}
	if level.TotalXP != xpAfterFirst {
		t.Errorf("XP grew from %d to %d on re-evaluation", xpAfterFirst, level.TotalXP)
	}
}

func TestEvaluateSkipsInactive(t *testing.T) {
	engine := testEngine(t)
	level := NewUserLevel("p1")
	records := map[string]*UserAchievement{}

	unlocks, err := engine.Evaluate(ProgressState{NetWorth: 50000000}, records, level, day(2026, time.March, 1))
	if err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}
	for _, u := range unlocks {
		if u.Achievement.Code == "retired" {
			t.Error("inactive achievement unlocked")
		}
	}
}

func TestEvaluateTracksProgress(t *testing.T) {
	engine := testEngine(t)
	level := NewUserLevel("p1")
	records := map[string]*UserAchievement{}

	if _, err := engine.Evaluate(ProgressState{NetWorth: 400000}, records, level, day(2026, time.March, 1)); err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}
	rec := records["millionaire"]
	if rec == nil {
		t.Fatal("no progress record for millionaire")
	}
	if rec.Unlocked {
		t.Error("millionaire unlocked below the threshold")
	}
	if rec.Progress != 400000 {
		t.Errorf("progress = %d, want 400000", rec.Progress)
	}
}

func TestListHidesLockedSecrets(t *testing.T) {
	engine := testEngine(t)
	records := map[string]*UserAchievement{}

	for _, l := range engine.List(records) {
		if l.Achievement.Code == "millionaire" {
			t.Error("locked secret achievement is listed")
		}
		if l.Achievement.Code == "retired" {
			t.Error("inactive achievement is listed")
		}
	}

	// Once unlocked, the secret shows up.
	records["millionaire"] = &UserAchievement{Code: "millionaire", Unlocked: true, UnlockedAt: day(2026, time.March, 1)}
	found := false
	for _, l := range engine.List(records) {
		if l.Achievement.Code == "millionaire" {
			found = true
			if !l.Unlocked {
				t.Error("listing shows the secret as locked")
			}
		}
	}
	if !found {
		t.Error("unlocked secret achievement is not listed")
	}
}

func TestDefaultAchievements(t *testing.T) {
	catalog := DefaultAchievements()
	if len(catalog) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	seen := map[string]bool{}
	for _, a := range catalog {
		if seen[a.Code] {
			t.Errorf("duplicate code %q", a.Code)
		}
		seen[a.Code] = true
		if a.Threshold <= 0 {
			t.Errorf("achievement %q has threshold %d", a.Code, a.Threshold)
		}
	}
	if !seen["first_snapshot"] {
		t.Error("catalog is missing first_snapshot")
	}
}

func TestLoadAchievementsRejectsBadCatalog(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"duplicate code", "achievements:\n  - {code: a, metric: level, threshold: 1}\n  - {code: a, metric: level, threshold: 2}\n"},
		{"missing metric", "achievements:\n  - {code: a, threshold: 1}\n"},
		{"zero threshold", "achievements:\n  - {code: a, metric: level, threshold: 0}\n"},
		{"not yaml", "achievements: ["},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadAchievements([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
