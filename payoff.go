package wealth

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy selects the order in which extra payments attack debts.
type Strategy int

const (
	// Avalanche targets the highest interest rate first and minimizes the
	// total interest paid.
	Avalanche Strategy = iota
	// Snowball targets the smallest balance first and minimizes the time to
	// the first payoff, for motivational effect.
	Snowball
)

func (s Strategy) String() string {
	switch s {
	case Avalanche:
		return "avalanche"
	case Snowball:
		return "snowball"
	default:
		return "unknown"
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avalanche":
		return Avalanche, nil
	case "snowball":
		return Snowball, nil
	default:
		return Avalanche, fmt.Errorf("unknown payoff strategy %q", s)
	}
}

// MaxPayoffMonths is the simulation's hard iteration cap. Exceeding it means
// some minimum payment does not cover its accruing interest, which surfaces
// as ErrDebtNeverPaysOff instead of looping forever.
const MaxPayoffMonths = 600

// DebtPayoff is the simulated outcome for one debt within a plan.
type DebtPayoff struct {
	DebtID       string `json:"debt_id"`
	Name         string `json:"name"`
	PayoffMonth  int    `json:"payoff_month"` // 1-based month in which the balance reaches zero
	InterestPaid Money  `json:"interest_paid"`
}

// PayoffPlan is the result of a full debt payoff simulation.
type PayoffPlan struct {
	Strategy      Strategy     `json:"strategy"`
	ExtraMonthly  Money        `json:"extra_monthly_payment"`
	Months        int          `json:"months_to_payoff"`
	DebtFreeDate  Date         `json:"debt_free_date"`
	TotalInterest Money        `json:"total_interest_paid"`
	TotalPaid     Money        `json:"total_paid"`
	Debts         []DebtPayoff `json:"debts"`
}

// simDebt is one debt's mutable state inside the simulation.
type simDebt struct {
	src      *Debt
	balance  Money
	interest Money
	payoff   int
}

// PlanDebtPayoff simulates paying down a set of active debts month by month,
// starting from the given date. Each month every debt accrues one month of
// interest, receives its minimum payment, and the extra budget plus the
// minimums freed by already-paid-off debts roll onto the first debt in the
// strategy's order (any surplus rolls to the next).
func PlanDebtPayoff(debts []*Debt, strategy Strategy, extraMonthly Money, on Date) (*PayoffPlan, error) {
	if len(debts) == 0 {
		return nil, invalidf("debts", "at least one active debt is required")
	}
	if extraMonthly.IsNegative() {
		return nil, invalidf("extra_monthly_payment", "must not be negative, got %s", extraMonthly)
	}
	for _, d := range debts {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !d.Balance.IsPositive() {
			return nil, invalidf("current_balance", "debt %q has no balance to pay off", d.Name)
		}
	}

	sim := make([]*simDebt, len(debts))
	for i, d := range debts {
		sim[i] = &simDebt{src: d, balance: d.Balance, interest: M(0, d.Balance.Currency())}
	}
	orderDebts(sim, strategy)

	currency := debts[0].Balance.Currency()
	totalInterest := M(0, currency)
	totalPaid := M(0, currency)
	freedMinimums := M(0, currency)

	remaining := len(sim)
	month := 0
	for remaining > 0 {
		month++
		if month > MaxPayoffMonths {
			return nil, fmt.Errorf("payoff exceeds %d months, a minimum payment does not cover its interest: %w",
				MaxPayoffMonths, ErrDebtNeverPaysOff)
		}

		// Interest accrues on every open balance first.
		for _, d := range sim {
			if d.payoff != 0 {
				continue
			}
			interest := d.balance.Mul(d.src.Rate.Div(twelve))
			d.balance = d.balance.Add(interest)
			d.interest = d.interest.Add(interest)
			totalInterest = totalInterest.Add(interest)
		}

		// Minimum payments go to every open debt.
		for _, d := range sim {
			if d.payoff != 0 {
				continue
			}
			payment := d.src.MinPayment.Min(d.balance)
			d.balance = d.balance.Sub(payment)
			totalPaid = totalPaid.Add(payment)
		}

		// The extra budget and freed minimums roll onto the strategy's
		// first open debt; surplus spills over to the next.
		budget := extraMonthly.Add(freedMinimums)
		for _, d := range sim {
			if d.payoff != 0 || !budget.IsPositive() {
				continue
			}
			payment := budget.Min(d.balance)
			d.balance = d.balance.Sub(payment)
			budget = budget.Sub(payment)
			totalPaid = totalPaid.Add(payment)
		}

		for _, d := range sim {
			if d.payoff == 0 && !d.balance.IsPositive() {
				d.payoff = month
				freedMinimums = freedMinimums.Add(d.src.MinPayment)
				remaining--
			}
		}
	}

	plan := &PayoffPlan{
		Strategy:      strategy,
		ExtraMonthly:  extraMonthly,
		Months:        month,
		DebtFreeDate:  on.AddMonth(month),
		TotalInterest: totalInterest,
		TotalPaid:     totalPaid,
		Debts:         make([]DebtPayoff, 0, len(sim)),
	}
	for _, d := range sim {
		plan.Debts = append(plan.Debts, DebtPayoff{
			DebtID:       d.src.ID,
			Name:         d.src.Name,
			PayoffMonth:  d.payoff,
			InterestPaid: d.interest,
		})
	}
	return plan, nil
}

// orderDebts sorts the simulation set once, at plan time, per the strategy.
func orderDebts(sim []*simDebt, strategy Strategy) {
	switch strategy {
	case Avalanche:
		// Highest rate first; ties go to the larger balance.
		sort.SliceStable(sim, func(i, j int) bool {
			ri, rj := sim[i].src.Rate, sim[j].src.Rate
			if !ri.Equal(rj) {
				return ri.GreaterThan(rj)
			}
			return sim[i].balance.GreaterThan(sim[j].balance)
		})
	case Snowball:
		// Smallest balance first; ties go to the higher rate.
		sort.SliceStable(sim, func(i, j int) bool {
			if !sim[i].balance.Equal(sim[j].balance) {
				return sim[i].balance.LessThan(sim[j].balance)
			}
			return sim[i].src.Rate.GreaterThan(sim[j].src.Rate)
		})
	}
}
