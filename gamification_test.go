package wealth

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	policy := DefaultLevelPolicy()
	testCases := []struct {
		totalXP   int
		wantLevel int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{12000, 10},
		{999999, 10},
	}
	for _, tc := range testCases {
		if got := policy.LevelFor(tc.totalXP); got != tc.wantLevel {
			t.Errorf("LevelFor(%d) = %d, want %d", tc.totalXP, got, tc.wantLevel)
		}
	}
}

func TestAwardXP(t *testing.T) {
	policy := DefaultLevelPolicy()
	u := NewUserLevel("p1")

	gained, err := u.AwardXP(50, policy)
	if err != nil {
		t.Fatalf("AwardXP() failed: %v", err)
	}
	if gained != 0 || u.Level != 1 || u.TotalXP != 50 || u.CurrentXP != 50 {
		t.Errorf("after 50 XP: gained=%d level=%d total=%d current=%d", gained, u.Level, u.TotalXP, u.CurrentXP)
	}

	gained, err = u.AwardXP(75, policy)
	if err != nil {
		t.Fatalf("AwardXP() failed: %v", err)
	}
	if gained != 1 || u.Level != 2 || u.TotalXP != 125 {
		t.Errorf("after 125 XP: gained=%d level=%d total=%d", gained, u.Level, u.TotalXP)
	}
	// CurrentXP restarts against the last crossed threshold.
	if u.CurrentXP != 25 {
		t.Errorf("current XP = %d, want 25 into level 2", u.CurrentXP)
	}

	// A big award can gain several levels at once.
	gained, err = u.AwardXP(1000, policy)
	if err != nil {
		t.Fatalf("AwardXP() failed: %v", err)
	}
	if u.TotalXP != 1125 || u.Level != 5 || gained != 3 {
		t.Errorf("after 1125 XP: gained=%d level=%d total=%d, want 3/5/1125", gained, u.Level, u.TotalXP)
	}

	if _, err := u.AwardXP(0, policy); !IsValidation(err) {
		t.Errorf("zero award: expected a validation error, got %v", err)
	}
	if _, err := u.AwardXP(-10, policy); !IsValidation(err) {
		t.Errorf("negative award: expected a validation error, got %v", err)
	}
}

func TestRecordActivityStreak(t *testing.T) {
	u := NewUserLevel("p1")

	u.RecordActivity(day(2026, time.March, 1))
	if u.CurrentStreak != 1 || u.LongestStreak != 1 {
		t.Errorf("first activity: current=%d longest=%d, want 1/1", u.CurrentStreak, u.LongestStreak)
	}

	// Same day again is a no-op.
	u.RecordActivity(day(2026, time.March, 1))
	if u.CurrentStreak != 1 {
		t.Errorf("same day: current=%d, want 1", u.CurrentStreak)
	}

	// Next day extends.
	u.RecordActivity(day(2026, time.March, 2))
	u.RecordActivity(day(2026, time.March, 3))
	if u.CurrentStreak != 3 || u.LongestStreak != 3 {
		t.Errorf("three days: current=%d longest=%d, want 3/3", u.CurrentStreak, u.LongestStreak)
	}

	// A gap resets the streak but keeps the high-water mark.
	u.RecordActivity(day(2026, time.March, 10))
	if u.CurrentStreak != 1 {
		t.Errorf("after gap: current=%d, want 1", u.CurrentStreak)
	}
	if u.LongestStreak != 3 {
		t.Errorf("after gap: longest=%d, want 3", u.LongestStreak)
	}

	// Out of order activity does not rewind anything.
	u.RecordActivity(day(2026, time.March, 5))
	if u.CurrentStreak != 1 || !u.LastActivity.Equal(day(2026, time.March, 10)) {
		t.Errorf("out of order: current=%d last=%s", u.CurrentStreak, u.LastActivity)
	}
}

func TestLevelPolicyValidate(t *testing.T) {
	if err := DefaultLevelPolicy().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}
	bad := LevelPolicy{Thresholds: []int{100, 100}}
	if err := bad.Validate(); err == nil {
		t.Error("non increasing thresholds should fail")
	}
}

func TestParseLevelPolicy(t *testing.T) {
	policy, err := ParseLevelPolicy([]byte("thresholds: [10, 20, 40]\n"))
	if err != nil {
		t.Fatalf("ParseLevelPolicy() failed: %v", err)
	}
	if got := policy.LevelFor(25); got != 3 {
		t.Errorf("LevelFor(25) = %d, want 3", got)
	}
	if _, err := ParseLevelPolicy([]byte("thresholds: [10, 5]\n")); err == nil {
		t.Error("decreasing thresholds should fail to parse")
	}
}

func TestNextThreshold(t *testing.T) {
	policy := DefaultLevelPolicy()
	if next, ok := policy.NextThreshold(0); !ok || next != 100 {
		t.Errorf("NextThreshold(0) = (%d, %v), want (100, true)", next, ok)
	}
	if _, ok := policy.NextThreshold(999999); ok {
		t.Error("top of the ladder should have no next threshold")
	}
}
