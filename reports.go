package wealth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// TransactionType tells income from expense.
type TransactionType int

const (
	Income TransactionType = iota
	Expense
)

func (t TransactionType) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return Income, fmt.Errorf("unknown transaction type %q", s)
	}
}

func (t TransactionType) MarshalJSON() ([]byte, error) { return []byte(`"` + t.String() + `"`), nil }
func (t *TransactionType) UnmarshalJSON(b []byte) error {
	v, err := ParseTransactionType(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Transaction is one dated income or expense record.
type Transaction struct {
	ID        string          `json:"id"`
	ProfileID string          `json:"profile_id"`
	Date      Date            `json:"date"`
	Amount    Money           `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category,omitempty"`
	Note      string          `json:"note,omitempty"`
}

// NewTransaction creates a transaction with a positive amount.
func NewTransaction(profileID string, on Date, amount Money, kind TransactionType, category string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, invalidf("amount", "must be positive, got %s", amount)
	}
	return &Transaction{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Date:      on,
		Amount:    amount,
		Type:      kind,
		Category:  category,
	}, nil
}

// CategoryTotal is one category's sum within a report.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    Money  `json:"total"`
}

// PeriodComparison sets a report's headline figures against the previous
// period of equal length.
type PeriodComparison struct {
	Income     Money   `json:"income_delta"`
	Expenses   Money   `json:"expenses_delta"`
	NetSavings Money   `json:"net_savings_delta"`
	Change     Percent `json:"net_savings_change"`
}

// Report aggregates one period's transactions and snapshots. The period is
// half open: transactions on the from date are in, transactions on the to
// date belong to the next period.
type Report struct {
	From Date `json:"from"`
	To   Date `json:"to"`

	TotalIncome   Money   `json:"total_income"`
	TotalExpenses Money   `json:"total_expenses"`
	NetSavings    Money   `json:"net_savings"`
	SavingsRate   Percent `json:"savings_rate"`

	IncomeByCategory  []CategoryTotal `json:"income_by_category,omitempty"`
	ExpenseByCategory []CategoryTotal `json:"expense_by_category,omitempty"`

	// Net worth change across the period, from the bracketing snapshots.
	// Known is false when the period has no snapshot to read.
	NetWorthStart  Money `json:"net_worth_start,omitempty"`
	NetWorthEnd    Money `json:"net_worth_end,omitempty"`
	NetWorthChange Money `json:"net_worth_change,omitempty"`
	NetWorthKnown  bool  `json:"net_worth_known"`

	// VsPrevious is nil when the previous period has no data at all.
	VsPrevious *PeriodComparison `json:"vs_previous,omitempty"`
}

// sumPeriod totals the transactions of the half open period [from,to) in the
// given currency and returns per-category totals ordered largest first.
func sumPeriod(transactions []*Transaction, from, to Date, currency string) (income, expenses Money, byCat map[TransactionType]map[string]Money, n int) {
	income, expenses = M(0, currency), M(0, currency)
	byCat = map[TransactionType]map[string]Money{Income: {}, Expense: {}}
	for _, t := range transactions {
		if t.Date.Before(from) || !t.Date.Before(to) {
			continue
		}
		n++
		cat := t.Category
		if cat == "" {
			cat = "uncategorized"
		}
		totals := byCat[t.Type]
		if prev, ok := totals[cat]; ok {
			totals[cat] = prev.Add(t.Amount)
		} else {
			totals[cat] = t.Amount
		}
		switch t.Type {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return income, expenses, byCat, n
}

// categoryTotals flattens a category map into a slice ordered largest first,
// with the category name as tiebreak.
func categoryTotals(totals map[string]Money) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// AggregateReport builds the report for the half open period [from,to) in the
// given currency. Net worth figures come from the latest snapshots before the
// period's ends; the previous period of equal length feeds the comparison,
// which stays nil when that period has neither transactions nor snapshots.
func AggregateReport(transactions []*Transaction, snapshots []*Snapshot, from, to Date, currency string) (*Report, error) {
	if !from.Before(to) {
		return nil, invalidf("period", "from %s must be before to %s", from, to)
	}

	income, expenses, byCat, _ := sumPeriod(transactions, from, to, currency)
	r := &Report{
		From:              from,
		To:                to,
		TotalIncome:       income,
		TotalExpenses:     expenses,
		NetSavings:        income.Sub(expenses),
		IncomeByCategory:  categoryTotals(byCat[Income]),
		ExpenseByCategory: categoryTotals(byCat[Expense]),
	}
	if income.IsPositive() {
		r.SavingsRate = Percent(r.NetSavings.Ratio(income).InexactFloat64() * 100)
	}

	// The period's net worth change reads the latest snapshot strictly
	// before each end of the period.
	start := LatestSnapshot(snapshots, from.Add(-1))
	end := LatestSnapshot(snapshots, to.Add(-1))
	if end != nil && !end.Date.Before(from) {
		r.NetWorthEnd = end.NetWorth
		r.NetWorthKnown = true
		if start != nil {
			r.NetWorthStart = start.NetWorth
			r.NetWorthChange = end.NetWorth.Sub(start.NetWorth)
		}
	}

	// Previous period of equal length, ending where this one starts.
	days := to.Sub(from)
	prevFrom, prevTo := from.Add(-days), from
	prevIncome, prevExpenses, _, n := sumPeriod(transactions, prevFrom, prevTo, currency)
	prevKnown := LatestSnapshot(snapshots, prevTo.Add(-1)) != nil
	if n > 0 || prevKnown {
		prevSavings := prevIncome.Sub(prevExpenses)
		cmp := &PeriodComparison{
			Income:     income.Sub(prevIncome),
			Expenses:   expenses.Sub(prevExpenses),
			NetSavings: r.NetSavings.Sub(prevSavings),
		}
		if !prevSavings.IsZero() {
			cmp.Change = Percent(cmp.NetSavings.Ratio(prevSavings).InexactFloat64() * 100)
		}
		r.VsPrevious = cmp
	}
	return r, nil
}

// FinancialReport is a stored report record.
type FinancialReport struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profile_id"`
	Kind        string `json:"report_type"` // monthly, quarterly, yearly
	Report      Report `json:"report"`
	GeneratedAt Date   `json:"generated_at"`
}

// NewFinancialReport wraps a computed report as a stored record.
func NewFinancialReport(profileID, kind string, report Report, on Date) *FinancialReport {
	return &FinancialReport{
		ID:          uuid.NewString(),
		ProfileID:   profileID,
		Kind:        kind,
		Report:      report,
		GeneratedAt: on,
	}
}
