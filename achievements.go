package wealth

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Achievement is one entry of the badge catalog. Requirements bind a metric
// of the profile's state to a threshold; the engine unlocks the achievement
// once the metric reaches it.
type Achievement struct {
	Code        string `yaml:"code" json:"code"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"` // savings, debt, goals, streaks, learning
	Icon        string `yaml:"icon" json:"icon,omitempty"`
	BadgeColor  string `yaml:"badge_color" json:"badge_color,omitempty"`

	Metric    Metric `yaml:"metric" json:"metric"`
	Threshold int64  `yaml:"threshold" json:"threshold"`
	XPReward  int    `yaml:"xp_reward" json:"xp_reward"`

	Secret bool `yaml:"secret" json:"secret,omitempty"`
	Active bool `yaml:"active" json:"active"`
}

// Metric names the profile figure an achievement requirement reads.
type Metric string

const (
	MetricSnapshotCount  Metric = "snapshot_count"
	MetricGoalsCompleted Metric = "goals_completed"
	MetricGoalsCreated   Metric = "goals_created"
	MetricDebtsPaidOff   Metric = "debts_paid_off"
	MetricNetWorth       Metric = "net_worth"       // in whole currency units
	MetricEmergencyFund  Metric = "emergency_fund"  // in whole currency units
	MetricSavedAmount    Metric = "saved_amount"    // in whole currency units
	MetricCurrentStreak  Metric = "current_streak"  // days
	MetricLongestStreak  Metric = "longest_streak"  // days
	MetricLessonsDone    Metric = "lessons_completed"
	MetricLevel          Metric = "level"
	MetricHealthScore    Metric = "health_score"
)

//go:embed achievements.yaml
var defaultCatalog []byte

// LoadAchievements parses an achievement catalog from YAML. Codes must be
// unique and every entry needs a metric and a positive threshold.
func LoadAchievements(data []byte) ([]Achievement, error) {
	var doc struct {
		Achievements []Achievement `yaml:"achievements"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse achievement catalog: %w", err)
	}
	seen := make(map[string]bool)
	for _, a := range doc.Achievements {
		if a.Code == "" {
			return nil, invalidf("code", "achievement %q has no code", a.Title)
		}
		if seen[a.Code] {
			return nil, invalidf("code", "duplicate achievement code %q", a.Code)
		}
		seen[a.Code] = true
		if a.Metric == "" {
			return nil, invalidf("metric", "achievement %q has no metric", a.Code)
		}
		if a.Threshold <= 0 {
			return nil, invalidf("threshold", "achievement %q must have a positive threshold", a.Code)
		}
	}
	return doc.Achievements, nil
}

// DefaultAchievements returns the embedded catalog.
func DefaultAchievements() []Achievement {
	catalog, err := LoadAchievements(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded achievement catalog is invalid: %v", err))
	}
	return catalog
}

// UserAchievement is a profile's unlock record for one achievement. Unlocking
// is one-way and exactly-once.
type UserAchievement struct {
	ProfileID  string `json:"profile_id"`
	Code       string `json:"code"`
	Unlocked   bool   `json:"unlocked"`
	UnlockedAt Date   `json:"unlocked_at,omitempty"`
	Progress   int64  `json:"progress"`
}

// unlock flips the record to unlocked exactly once and reports whether this
// call did it.
func (u *UserAchievement) unlock(on Date) bool {
	if u.Unlocked {
		return false
	}
	u.Unlocked = true
	u.UnlockedAt = on
	return true
}

// ProgressState carries the metric values the engine evaluates requirements
// against. The caller derives it from the profile's records; amounts are in
// whole currency units.
type ProgressState struct {
	SnapshotCount  int64
	GoalsCompleted int64
	GoalsCreated   int64
	DebtsPaidOff   int64
	NetWorth       int64
	EmergencyFund  int64
	SavedAmount    int64
	CurrentStreak  int64
	LongestStreak  int64
	LessonsDone    int64
	Level          int64
	HealthScore    int64
}

// value returns the state's figure for one metric.
func (s ProgressState) value(m Metric) (int64, bool) {
	switch m {
	case MetricSnapshotCount:
		return s.SnapshotCount, true
	case MetricGoalsCompleted:
		return s.GoalsCompleted, true
	case MetricGoalsCreated:
		return s.GoalsCreated, true
	case MetricDebtsPaidOff:
		return s.DebtsPaidOff, true
	case MetricNetWorth:
		return s.NetWorth, true
	case MetricEmergencyFund:
		return s.EmergencyFund, true
	case MetricSavedAmount:
		return s.SavedAmount, true
	case MetricCurrentStreak:
		return s.CurrentStreak, true
	case MetricLongestStreak:
		return s.LongestStreak, true
	case MetricLessonsDone:
		return s.LessonsDone, true
	case MetricLevel:
		return s.Level, true
	case MetricHealthScore:
		return s.HealthScore, true
	default:
		return 0, false
	}
}

// Unlock is one achievement unlocked by an evaluation run.
type Unlock struct {
	Achievement  Achievement `json:"achievement"`
	UnlockedAt   Date        `json:"unlocked_at"`
	XPAwarded    int         `json:"xp_awarded"`
	LevelsGained int         `json:"levels_gained,omitempty"`
}

// Engine evaluates achievement requirements and awards their XP.
type Engine struct {
	Catalog []Achievement
	Levels  LevelPolicy
}

// NewEngine returns an engine over the embedded catalog and the default
// level ladder.
func NewEngine() *Engine {
	return &Engine{Catalog: DefaultAchievements(), Levels: DefaultLevelPolicy()}
}

// Evaluate checks every active catalog entry against the state, unlocks the
// ones whose metric reached the threshold, and awards each unlock's XP to the
// user exactly once. Records missing from the map are created; an achievement
// already unlocked never unlocks or pays again.
func (e *Engine) Evaluate(state ProgressState, records map[string]*UserAchievement, level *UserLevel, on Date) ([]Unlock, error) {
	var unlocks []Unlock
	for _, a := range e.Catalog {
		if !a.Active {
			continue
		}
		value, ok := state.value(a.Metric)
		if !ok {
			return nil, fmt.Errorf("achievement %q: unknown metric %q", a.Code, a.Metric)
		}

		rec := records[a.Code]
		if rec == nil {
			rec = &UserAchievement{ProfileID: level.ProfileID, Code: a.Code}
			records[a.Code] = rec
		}
		if !rec.Unlocked {
			rec.Progress = value
		}
		if value < a.Threshold {
			continue
		}
		if !rec.unlock(on) {
			continue
		}

		unlock := Unlock{Achievement: a, UnlockedAt: on, XPAwarded: a.XPReward}
		if a.XPReward > 0 {
			gained, err := level.AwardXP(a.XPReward, e.Levels)
			if err != nil {
				return nil, fmt.Errorf("achievement %q: %w", a.Code, err)
			}
			unlock.LevelsGained = gained
		}
		level.TotalAchievements++
		unlocks = append(unlocks, unlock)
	}
	return unlocks, nil
}

// Listing is one catalog entry paired with the profile's unlock state, as
// shown to the user. Secret achievements stay hidden until unlocked.
type Listing struct {
	Achievement Achievement `json:"achievement"`
	Unlocked    bool        `json:"unlocked"`
	UnlockedAt  Date        `json:"unlocked_at,omitempty"`
	Progress    int64       `json:"progress"`
}

// List returns the visible catalog with unlock state: every non-secret active
// achievement, plus the secret ones already unlocked.
func (e *Engine) List(records map[string]*UserAchievement) []Listing {
	var out []Listing
	for _, a := range e.Catalog {
		if !a.Active {
			continue
		}
		rec := records[a.Code]
		unlocked := rec != nil && rec.Unlocked
		if a.Secret && !unlocked {
			continue
		}
		l := Listing{Achievement: a, Unlocked: unlocked}
		if rec != nil {
			l.UnlockedAt = rec.UnlockedAt
			l.Progress = rec.Progress
		}
		out = append(out, l)
	}
	return out
}
