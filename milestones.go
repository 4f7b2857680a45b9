package wealth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MilestoneKind names the figure a milestone watches.
type MilestoneKind int

const (
	NetWorthMilestone MilestoneKind = iota
	SavingsMilestone
	DebtFreeMilestone
	GoalMilestone
)

func (k MilestoneKind) String() string {
	switch k {
	case NetWorthMilestone:
		return "net_worth"
	case SavingsMilestone:
		return "savings"
	case DebtFreeMilestone:
		return "debt_free"
	case GoalMilestone:
		return "goal"
	default:
		return "unknown"
	}
}

func ParseMilestoneKind(s string) (MilestoneKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "net_worth":
		return NetWorthMilestone, nil
	case "savings":
		return SavingsMilestone, nil
	case "debt_free":
		return DebtFreeMilestone, nil
	case "goal":
		return GoalMilestone, nil
	default:
		return NetWorthMilestone, fmt.Errorf("unknown milestone kind %q", s)
	}
}

func (k MilestoneKind) MarshalJSON() ([]byte, error) { return []byte(`"` + k.String() + `"`), nil }
func (k *MilestoneKind) UnmarshalJSON(b []byte) error {
	v, err := ParseMilestoneKind(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Milestone is a fixed threshold on one of the profile's figures. Reaching it
// is one-way: once crossed it stays reached even if the figure later dips
// below the target again.
type Milestone struct {
	ID        string        `json:"id"`
	ProfileID string        `json:"profile_id"`
	Name      string        `json:"name"`
	Kind      MilestoneKind `json:"kind"`
	Target    Money         `json:"target_amount"`

	Reached   bool `json:"reached"`
	ReachedAt Date `json:"reached_at,omitempty"`
}

// NewMilestone creates an unreached milestone with a positive target.
func NewMilestone(profileID, name string, kind MilestoneKind, target Money) (*Milestone, error) {
	if !target.IsPositive() {
		return nil, invalidf("target_amount", "must be positive, got %s", target)
	}
	return &Milestone{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Name:      name,
		Kind:      kind,
		Target:    target,
	}, nil
}

// MilestoneFigures carries the current values milestones are checked against.
type MilestoneFigures struct {
	NetWorth  Money
	Savings   Money
	TotalDebt Money
}

// crossed reports whether the milestone's condition holds for the figures.
func (m *Milestone) crossed(fig MilestoneFigures) bool {
	switch m.Kind {
	case NetWorthMilestone:
		return fig.NetWorth.GreaterThanOrEqual(m.Target)
	case SavingsMilestone:
		return fig.Savings.GreaterThanOrEqual(m.Target)
	case DebtFreeMilestone:
		return !fig.TotalDebt.IsPositive()
	default:
		return false
	}
}

// CrossMilestones marks every pending milestone whose condition now holds and
// returns the ones newly reached by this call. Already reached milestones are
// never returned again.
func CrossMilestones(milestones []*Milestone, fig MilestoneFigures, on Date) []*Milestone {
	var reached []*Milestone
	for _, m := range milestones {
		if m.Reached || !m.crossed(fig) {
			continue
		}
		m.Reached = true
		m.ReachedAt = on
		reached = append(reached, m)
	}
	return reached
}
