package wealth

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LevelPolicy is the cumulative XP required to reach each level. Thresholds[0]
// is the XP needed for level 2, so a policy with nine thresholds spans levels
// 1 through 10. Thresholds must be strictly increasing.
type LevelPolicy struct {
	Thresholds []int `yaml:"thresholds" json:"thresholds"`
}

// DefaultLevelPolicy returns the standard ten level ladder.
func DefaultLevelPolicy() LevelPolicy {
	return LevelPolicy{Thresholds: []int{100, 250, 500, 1000, 2000, 3500, 5500, 8000, 12000}}
}

// Validate checks that thresholds are positive and strictly increasing.
func (p LevelPolicy) Validate() error {
	prev := 0
	for i, t := range p.Thresholds {
		if t <= prev {
			return invalidf("thresholds", "must be strictly increasing, threshold %d is %d after %d", i, t, prev)
		}
		prev = t
	}
	return nil
}

// ParseLevelPolicy reads a level ladder from YAML.
func ParseLevelPolicy(data []byte) (LevelPolicy, error) {
	var p LevelPolicy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("cannot parse level policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// LevelFor returns the level a cumulative XP total earns under the policy.
// Levels start at 1 and never exceed len(Thresholds)+1.
func (p LevelPolicy) LevelFor(totalXP int) int {
	level := 1
	for _, t := range p.Thresholds {
		if totalXP < t {
			break
		}
		level++
	}
	return level
}

// NextThreshold returns the cumulative XP needed for the next level, or
// (0, false) at the top of the ladder.
func (p LevelPolicy) NextThreshold(totalXP int) (int, bool) {
	for _, t := range p.Thresholds {
		if totalXP < t {
			return t, true
		}
	}
	return 0, false
}

// UserLevel is a profile's gamification state: XP, level, activity streak and
// lifetime counters. TotalXP only ever grows, and the level derived from it is
// monotonic too.
type UserLevel struct {
	ProfileID string `json:"profile_id"`

	Level     int `json:"level"`
	CurrentXP int `json:"current_xp"` // XP into the current level
	TotalXP   int `json:"total_xp"`

	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
	LastActivity  Date `json:"last_activity,omitempty"`

	TotalAchievements int `json:"total_achievements"`
	GoalsCompleted    int `json:"goals_completed"`
	LessonsCompleted  int `json:"lessons_completed"`
}

// NewUserLevel starts a profile at level 1 with no XP.
func NewUserLevel(profileID string) *UserLevel {
	return &UserLevel{ProfileID: profileID, Level: 1}
}

// AwardXP adds a positive amount of XP and recomputes the level under the
// policy. It reports how many levels were gained, usually zero.
func (u *UserLevel) AwardXP(amount int, policy LevelPolicy) (levelsGained int, err error) {
	if amount <= 0 {
		return 0, invalidf("xp", "award must be positive, got %d", amount)
	}
	before := u.Level
	u.TotalXP += amount
	u.Level = policy.LevelFor(u.TotalXP)
	u.CurrentXP = u.TotalXP
	if u.Level > 1 {
		u.CurrentXP = u.TotalXP - policy.Thresholds[u.Level-2]
	}
	return u.Level - before, nil
}

// RecordActivity updates the daily streak for an activity on the given date.
// A second activity on the same day is a no-op, the day after the last
// activity extends the streak, and any gap resets it to one. The longest
// streak is a high-water mark.
func (u *UserLevel) RecordActivity(on Date) {
	switch {
	case u.LastActivity.IsZero():
		u.CurrentStreak = 1
	case on.Equal(u.LastActivity):
		return
	case on.Equal(u.LastActivity.Add(1)):
		u.CurrentStreak++
	case on.Before(u.LastActivity):
		// Out of order activity does not rewind the streak.
		return
	default:
		u.CurrentStreak = 1
	}
	u.LastActivity = on
	if u.CurrentStreak > u.LongestStreak {
		u.LongestStreak = u.CurrentStreak
	}
}
