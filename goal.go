package wealth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus int

const (
	GoalActive GoalStatus = iota
	GoalPaused
	GoalCompleted
	GoalCancelled
)

func (s GoalStatus) String() string {
	switch s {
	case GoalActive:
		return "active"
	case GoalPaused:
		return "paused"
	case GoalCompleted:
		return "completed"
	case GoalCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func ParseGoalStatus(s string) (GoalStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return GoalActive, nil
	case "paused":
		return GoalPaused, nil
	case "completed":
		return GoalCompleted, nil
	case "cancelled":
		return GoalCancelled, nil
	default:
		return GoalActive, fmt.Errorf("unknown goal status %q", s)
	}
}

func (s GoalStatus) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }
func (s *GoalStatus) UnmarshalJSON(b []byte) error {
	v, err := ParseGoalStatus(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Goal tracks progress toward a target amount. The current amount moves only
// through explicit contributions, and completion is a one-way transition.
type Goal struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`

	Target  Money `json:"target_amount"`
	Current Money `json:"current_amount"`

	Deadline Date       `json:"deadline,omitempty"`
	Status   GoalStatus `json:"status"`

	CreatedAt   Date `json:"created_at"`
	CompletedAt Date `json:"completed_at,omitempty"`
}

// NewGoal creates an active goal. The target must be strictly positive.
func NewGoal(profileID, name string, target Money, deadline Date) (*Goal, error) {
	if !target.IsPositive() {
		return nil, invalidf("target_amount", "must be positive, got %s", target)
	}
	return &Goal{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Name:      name,
		Target:    target,
		Current:   M(0, target.Currency()),
		Deadline:  deadline,
		Status:    GoalActive,
		CreatedAt: Today(),
	}, nil
}

// Progress returns the completion percentage, clamped to 100.
// A goal without a positive target has zero progress.
func (g *Goal) Progress() Percent {
	if !g.Target.IsPositive() {
		return 0
	}
	p := Percent(g.Current.Ratio(g.Target).InexactFloat64() * 100)
	if p > 100 {
		return 100
	}
	return p
}

// Contribute adds an amount toward the goal and reports whether the
// contribution completed it. Completion stamps CompletedAt exactly once.
func (g *Goal) Contribute(amount Money, on Date) (completed bool, err error) {
	if !amount.IsPositive() {
		return false, invalidf("amount", "contribution must be positive, got %s", amount)
	}
	switch g.Status {
	case GoalCompleted:
		return false, invalidf("status", "goal %q is already completed", g.Name)
	case GoalCancelled:
		return false, invalidf("status", "goal %q is cancelled", g.Name)
	case GoalPaused:
		return false, invalidf("status", "goal %q is paused", g.Name)
	}
	g.Current = g.Current.Add(amount)
	if g.Current.GreaterThanOrEqual(g.Target) {
		g.Status = GoalCompleted
		g.CompletedAt = on
		return true, nil
	}
	return false, nil
}

// Pause suspends an active goal.
func (g *Goal) Pause() error {
	if g.Status != GoalActive {
		return invalidf("status", "cannot pause a %s goal", g.Status)
	}
	g.Status = GoalPaused
	return nil
}

// Resume reactivates a paused goal.
func (g *Goal) Resume() error {
	if g.Status != GoalPaused {
		return invalidf("status", "cannot resume a %s goal", g.Status)
	}
	g.Status = GoalActive
	return nil
}

// Cancel abandons a goal. Completed goals stay completed.
func (g *Goal) Cancel() error {
	if g.Status == GoalCompleted {
		return invalidf("status", "cannot cancel a completed goal")
	}
	g.Status = GoalCancelled
	return nil
}
