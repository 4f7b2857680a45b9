package wealth

import (
	"testing"
	"time"
)

func tx(t *testing.T, d Date, amount float64, kind TransactionType, category string) *Transaction {
	t.Helper()
	x, err := NewTransaction("p1", d, SEK(amount), kind, category)
	if err != nil {
		t.Fatalf("NewTransaction() failed: %v", err)
	}
	return x
}

func marchTransactions(t *testing.T) []*Transaction {
	t.Helper()
	return []*Transaction{
		tx(t, day(2026, time.March, 1), 45000, Income, "salary"),
		tx(t, day(2026, time.March, 5), 6000, Expense, "groceries"),
		tx(t, day(2026, time.March, 12), 9000, Expense, "rent"),
		tx(t, day(2026, time.March, 20), 2000, Expense, "groceries"),
		// Belongs to April, the period is half open.
		tx(t, day(2026, time.April, 1), 99999, Expense, "out-of-period"),
		// Belongs to February, feeds the comparison.
		tx(t, day(2026, time.February, 10), 40000, Income, "salary"),
		tx(t, day(2026, time.February, 15), 20000, Expense, "rent"),
	}
}

func TestAggregateReport(t *testing.T) {
	from, to := day(2026, time.March, 1), day(2026, time.April, 1)
	r, err := AggregateReport(marchTransactions(t), nil, from, to, "SEK")
	if err != nil {
		t.Fatalf("AggregateReport() failed: %v", err)
	}

	if !r.TotalIncome.Equal(SEK(45000)) {
		t.Errorf("income = %s, want %s", r.TotalIncome, SEK(45000))
	}
	if !r.TotalExpenses.Equal(SEK(17000)) {
		t.Errorf("expenses = %s, want %s", r.TotalExpenses, SEK(17000))
	}
	if !r.NetSavings.Equal(SEK(28000)) {
		t.Errorf("net savings = %s, want %s", r.NetSavings, SEK(28000))
	}
	// 28000 / 45000
	if r.SavingsRate < Percent(62) || r.SavingsRate > Percent(63) {
		t.Errorf("savings rate = %s, want about 62.2%%", r.SavingsRate)
	}

	// Categories come largest first.
	if len(r.ExpenseByCategory) != 2 {
		t.Fatalf("got %d expense categories, want 2", len(r.ExpenseByCategory))
	}
	if r.ExpenseByCategory[0].Category != "rent" || !r.ExpenseByCategory[0].Total.Equal(SEK(9000)) {
		t.Errorf("top expense = %+v, want rent 9000", r.ExpenseByCategory[0])
	}
	if r.ExpenseByCategory[1].Category != "groceries" || !r.ExpenseByCategory[1].Total.Equal(SEK(8000)) {
		t.Errorf("second expense = %+v, want groceries 8000", r.ExpenseByCategory[1])
	}

	// February had data, so the comparison is present.
	if r.VsPrevious == nil {
		t.Fatal("expected a previous period comparison")
	}
	if !r.VsPrevious.Income.Equal(SEK(5000)) {
		t.Errorf("income delta = %s, want %s", r.VsPrevious.Income, SEK(5000))
	}
	if !r.VsPrevious.NetSavings.Equal(SEK(8000)) {
		t.Errorf("net savings delta = %s, want %s", r.VsPrevious.NetSavings, SEK(8000))
	}
}

func TestAggregateReportNoPriorData(t *testing.T) {
	transactions := []*Transaction{
		tx(t, day(2026, time.March, 1), 1000, Income, "salary"),
	}
	r, err := AggregateReport(transactions, nil, day(2026, time.March, 1), day(2026, time.April, 1), "SEK")
	if err != nil {
		t.Fatalf("AggregateReport() failed: %v", err)
	}
	if r.VsPrevious != nil {
		t.Errorf("comparison = %+v, want nil without prior data", r.VsPrevious)
	}
}

func TestAggregateReportNoIncome(t *testing.T) {
	transactions := []*Transaction{
		tx(t, day(2026, time.March, 5), 5000, Expense, "rent"),
	}
	r, err := AggregateReport(transactions, nil, day(2026, time.March, 1), day(2026, time.April, 1), "SEK")
	if err != nil {
		t.Fatalf("AggregateReport() failed: %v", err)
	}
	// No income: the savings rate stays zero instead of dividing by zero.
	if r.SavingsRate != 0 {
		t.Errorf("savings rate = %s, want 0", r.SavingsRate)
	}
	if !r.NetSavings.Equal(SEK(-5000)) {
		t.Errorf("net savings = %s, want %s", r.NetSavings, SEK(-5000))
	}
}

func TestAggregateReportNetWorth(t *testing.T) {
	snapshots := []*Snapshot{
		{Date: day(2026, time.February, 25), NetWorth: SEK(100000)},
		{Date: day(2026, time.March, 28), NetWorth: SEK(115000)},
	}
	r, err := AggregateReport(nil, snapshots, day(2026, time.March, 1), day(2026, time.April, 1), "SEK")
	if err != nil {
		t.Fatalf("AggregateReport() failed: %v", err)
	}
	if !r.NetWorthKnown {
		t.Fatal("net worth should be known with a snapshot in the period")
	}
	if !r.NetWorthEnd.Equal(SEK(115000)) {
		t.Errorf("net worth end = %s, want %s", r.NetWorthEnd, SEK(115000))
	}
	if !r.NetWorthChange.Equal(SEK(15000)) {
		t.Errorf("net worth change = %s, want %s", r.NetWorthChange, SEK(15000))
	}
}

func TestAggregateReportNoSnapshotInPeriod(t *testing.T) {
	snapshots := []*Snapshot{
		{Date: day(2026, time.January, 25), NetWorth: SEK(100000)},
	}
	r, err := AggregateReport(nil, snapshots, day(2026, time.March, 1), day(2026, time.April, 1), "SEK")
	if err != nil {
		t.Fatalf("AggregateReport() failed: %v", err)
	}
	if r.NetWorthKnown {
		t.Error("net worth should be unknown without a snapshot in the period")
	}
}

func TestAggregateReportValidation(t *testing.T) {
	from := day(2026, time.March, 1)
	if _, err := AggregateReport(nil, nil, from, from, "SEK"); !IsValidation(err) {
		t.Errorf("empty period: expected a validation error, got %v", err)
	}
}
