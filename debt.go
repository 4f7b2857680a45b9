package wealth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus is the lifecycle state of a debt. The transition
// active → paid_off happens when the balance reaches zero and is one-way.
type DebtStatus int

const (
	DebtActive DebtStatus = iota
	DebtPaidOff
)

func (s DebtStatus) String() string {
	switch s {
	case DebtActive:
		return "active"
	case DebtPaidOff:
		return "paid_off"
	default:
		return "unknown"
	}
}

func ParseDebtStatus(s string) (DebtStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return DebtActive, nil
	case "paid_off":
		return DebtPaidOff, nil
	default:
		return DebtActive, fmt.Errorf("unknown debt status %q", s)
	}
}

func (s DebtStatus) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }
func (s *DebtStatus) UnmarshalJSON(b []byte) error {
	v, err := ParseDebtStatus(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

var twelve = decimal.NewFromInt(12)

// Debt is a single liability with a running balance.
// The annual interest rate is a decimal fraction (0.05 = 5%).
type Debt struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Kind      string `json:"debt_type,omitempty"` // mortgage, student_loan, car_loan, consumer_loan, credit_card
	Lender    string `json:"lender,omitempty"`

	Original   Money           `json:"original_amount,omitempty"`
	Balance    Money           `json:"current_balance"`
	Rate       decimal.Decimal `json:"interest_rate"`
	MinPayment Money           `json:"minimum_payment"`

	Status DebtStatus `json:"status"`

	CreatedAt Date `json:"created_at"`
	PaidOffAt Date `json:"paid_off_at,omitempty"`
}

// NewDebt creates an active debt after validating its figures.
func NewDebt(profileID, name string, balance Money, rate decimal.Decimal, minPayment Money) (*Debt, error) {
	d := &Debt{
		ID:         uuid.NewString(),
		ProfileID:  profileID,
		Name:       name,
		Original:   balance,
		Balance:    balance,
		Rate:       rate,
		MinPayment: minPayment,
		Status:     DebtActive,
		CreatedAt:  Today(),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the debt invariants: a non-negative balance, an annual
// rate in [0,1), and a non-negative minimum payment.
func (d *Debt) Validate() error {
	if d.Balance.IsNegative() {
		return invalidf("current_balance", "must not be negative, got %s", d.Balance)
	}
	if d.Rate.IsNegative() || d.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return invalidf("interest_rate", "must be in [0,1), got %s", d.Rate)
	}
	if d.MinPayment.IsNegative() {
		return invalidf("minimum_payment", "must not be negative, got %s", d.MinPayment)
	}
	return nil
}

// MonthlyInterest returns one month of interest on the current balance.
func (d *Debt) MonthlyInterest() Money {
	return d.Balance.Mul(d.Rate.Div(twelve))
}

// ApplyPayment reduces the balance by the given amount, clamping at zero.
// Reaching zero transitions the debt to paid_off exactly once and reports it.
func (d *Debt) ApplyPayment(amount Money, on Date) (paidOff bool, err error) {
	if !amount.IsPositive() {
		return false, invalidf("amount", "payment must be positive, got %s", amount)
	}
	if d.Status == DebtPaidOff {
		return false, invalidf("status", "debt %q is already paid off", d.Name)
	}
	d.Balance = d.Balance.Sub(amount)
	if !d.Balance.IsPositive() {
		d.Balance = M(0, d.Balance.Currency())
		d.Status = DebtPaidOff
		d.PaidOffAt = on
		return true, nil
	}
	return false, nil
}
