package wealth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Frequency is the cadence of a recurring transaction.
type Frequency int

const (
	EveryDay Frequency = iota
	EveryWeek
	EveryTwoWeeks
	EveryMonth
	EveryYear
)

func (f Frequency) String() string {
	switch f {
	case EveryDay:
		return "daily"
	case EveryWeek:
		return "weekly"
	case EveryTwoWeeks:
		return "biweekly"
	case EveryMonth:
		return "monthly"
	case EveryYear:
		return "yearly"
	default:
		return "unknown"
	}
}

func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return EveryDay, nil
	case "weekly":
		return EveryWeek, nil
	case "biweekly":
		return EveryTwoWeeks, nil
	case "monthly":
		return EveryMonth, nil
	case "yearly":
		return EveryYear, nil
	default:
		return EveryDay, fmt.Errorf("unknown frequency %q", s)
	}
}

func (f Frequency) MarshalJSON() ([]byte, error) { return []byte(`"` + f.String() + `"`), nil }
func (f *Frequency) UnmarshalJSON(b []byte) error {
	v, err := ParseFrequency(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// RecurringTransaction is a scheduled income or expense template. The
// scheduler materializes one Occurrence per due date and never the template
// itself.
type RecurringTransaction struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`

	Amount Money           `json:"amount"`
	Type   TransactionType `json:"type"`

	Frequency  Frequency     `json:"frequency"`
	DayOfMonth int           `json:"day_of_month,omitempty"` // monthly and yearly
	DayOfWeek  *time.Weekday `json:"day_of_week,omitempty"`  // weekly, nil means the start's weekday

	Start Date `json:"start_date"`
	End   Date `json:"end_date,omitempty"` // zero means open-ended

	NextOccurrence Date `json:"next_occurrence,omitempty"`
	LastProcessed  Date `json:"last_processed,omitempty"`

	Active bool `json:"active"`
}

// NewRecurringTransaction creates an active schedule after validating its
// figures.
func NewRecurringTransaction(profileID, name string, amount Money, kind TransactionType, freq Frequency, start Date) (*RecurringTransaction, error) {
	r := &RecurringTransaction{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Name:      name,
		Amount:    amount,
		Type:      kind,
		Frequency: freq,
		Start:     start,
		Active:    true,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r.NextOccurrence = start
	return r, nil
}

// Validate checks the schedule invariants.
func (r *RecurringTransaction) Validate() error {
	if !r.Amount.IsPositive() {
		return invalidf("amount", "must be positive, got %s", r.Amount)
	}
	if r.Start.IsZero() {
		return invalidf("start_date", "is required")
	}
	if !r.End.IsZero() && r.End.Before(r.Start) {
		return invalidf("end_date", "%s is before the start date %s", r.End, r.Start)
	}
	if r.DayOfMonth < 0 || r.DayOfMonth > 31 {
		return invalidf("day_of_month", "must be in [1,31], got %d", r.DayOfMonth)
	}
	if r.DayOfWeek != nil && (*r.DayOfWeek < time.Sunday || *r.DayOfWeek > time.Saturday) {
		return invalidf("day_of_week", "must be in [0,6], got %d", *r.DayOfWeek)
	}
	return nil
}

// Occurrence is one materialized instance of a recurring transaction.
type Occurrence struct {
	RecurringID string          `json:"recurring_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Amount      Money           `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        Date            `json:"date"`
}

// anchorDay returns the day-of-month anchor: the explicit DayOfMonth if set,
// otherwise the start date's day.
func (r *RecurringTransaction) anchorDay() int {
	if r.DayOfMonth > 0 {
		return r.DayOfMonth
	}
	return r.Start.Day()
}

// NextAfter returns the first due date strictly after d, honoring the
// schedule's end date. Monthly and yearly schedules clamp the anchor day to
// the last valid day of short months. Biweekly schedules stay anchored to the
// start date, so a late catch-up run does not drift the cadence.
func (r *RecurringTransaction) NextAfter(d Date) (Date, bool) {
	if d.Before(r.Start) {
		// The start date itself is the first occurrence.
		d = r.Start.Add(-1)
	}

	var next Date
	switch r.Frequency {
	case EveryDay:
		next = d.Add(1)

	case EveryWeek:
		target := r.Start.Weekday()
		if r.DayOfWeek != nil {
			target = *r.DayOfWeek
		}
		next = d.Add(1)
		for next.Weekday() != target {
			next = next.Add(1)
		}

	case EveryTwoWeeks:
		// First start + 14k strictly after d.
		elapsed := d.Sub(r.Start)
		k := elapsed/14 + 1
		if elapsed < 0 {
			k = 0
		}
		next = r.Start.Add(k * 14)

	case EveryMonth:
		// AddMonth normalizes an overflowing day forward past short months,
		// so step to the first of the next month before clamping the anchor.
		next = d.DayIn(r.anchorDay())
		if !next.After(d) {
			next = NewDate(d.Year(), d.Month()+1, 1).DayIn(r.anchorDay())
		}

	case EveryYear:
		next = NewDate(d.Year(), r.Start.Month(), 1).DayIn(r.anchorDay())
		if !next.After(d) {
			next = NewDate(d.Year()+1, r.Start.Month(), 1).DayIn(r.anchorDay())
		}

	default:
		return Date{}, false
	}

	if next.Before(r.Start) {
		next = r.Start
	}
	if !r.End.IsZero() && next.After(r.End) {
		return Date{}, false
	}
	return next, true
}

// GenerateOccurrences materializes every due date from the last processed
// date (exclusive) up to asOf (inclusive), advancing LastProcessed and
// NextOccurrence. A schedule behind by N periods yields all N missed
// occurrences in order. Inactive schedules yield nothing.
func (r *RecurringTransaction) GenerateOccurrences(asOf Date) []Occurrence {
	if !r.Active {
		return nil
	}

	cursor := r.LastProcessed
	if cursor.IsZero() {
		cursor = r.Start.Add(-1)
	}

	var out []Occurrence
	for {
		next, ok := r.NextAfter(cursor)
		if !ok || next.After(asOf) {
			break
		}
		out = append(out, Occurrence{
			RecurringID: r.ID,
			Name:        r.Name,
			Category:    r.Category,
			Amount:      r.Amount,
			Type:        r.Type,
			Date:        next,
		})
		cursor = next
	}

	if len(out) > 0 {
		r.LastProcessed = cursor
	}
	if next, ok := r.NextAfter(cursor); ok {
		r.NextOccurrence = next
	} else {
		r.NextOccurrence = Date{}
		if !r.End.IsZero() {
			r.Active = false
		}
	}
	return out
}
