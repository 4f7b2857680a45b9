package wealth

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testDebt(t *testing.T, name string, balance, minPayment float64, rate string) *Debt {
	t.Helper()
	r, err := decimal.NewFromString(rate)
	if err != nil {
		t.Fatalf("bad rate %q: %v", rate, err)
	}
	d, err := NewDebt("p1", name, SEK(balance), r, SEK(minPayment))
	if err != nil {
		t.Fatalf("NewDebt(%s) failed: %v", name, err)
	}
	return d
}

func TestPlanDebtPayoffSingleDebt(t *testing.T) {
	// 10 000 at 18% with a 250 minimum payment pays off in finite time.
	debt := testDebt(t, "card", 10000, 250, "0.18")

	plan, err := PlanDebtPayoff([]*Debt{debt}, Avalanche, SEK(0), day(2026, time.January, 1))
	if err != nil {
		t.Fatalf("PlanDebtPayoff() failed: %v", err)
	}
	if plan.Months <= 0 || plan.Months > MaxPayoffMonths {
		t.Errorf("months = %d, want a finite positive count", plan.Months)
	}
	// The amortization of 10k at 1.5%/month with 250 payments runs about
	// 62 months.
	if plan.Months < 55 || plan.Months > 70 {
		t.Errorf("months = %d, want around 62", plan.Months)
	}
	if !plan.TotalInterest.IsPositive() {
		t.Errorf("total interest = %s, want positive", plan.TotalInterest)
	}
	if !plan.TotalPaid.GreaterThan(SEK(10000)) {
		t.Errorf("total paid = %s, want more than the principal", plan.TotalPaid)
	}
	if got := plan.DebtFreeDate; !got.Equal(day(2026, time.January, 1).AddMonth(plan.Months)) {
		t.Errorf("debt free date = %s, inconsistent with %d months", got, plan.Months)
	}
}

func TestPlanDebtPayoffNeverPaysOff(t *testing.T) {
	// 150/month on 10 000 at 18% covers the interest exactly at the start;
	// any balance growth makes it lose ground forever.
	debt := testDebt(t, "card", 10000, 150, "0.18")

	_, err := PlanDebtPayoff([]*Debt{debt}, Avalanche, SEK(0), day(2026, time.January, 1))
	if !errors.Is(err, ErrDebtNeverPaysOff) {
		t.Fatalf("expected ErrDebtNeverPaysOff, got %v", err)
	}
}

func TestPlanDebtPayoffExtraBudgetRescues(t *testing.T) {
	debt := testDebt(t, "card", 10000, 150, "0.18")

	plan, err := PlanDebtPayoff([]*Debt{debt}, Avalanche, SEK(500), day(2026, time.January, 1))
	if err != nil {
		t.Fatalf("PlanDebtPayoff() with extra failed: %v", err)
	}
	if plan.Months > 24 {
		t.Errorf("months = %d, want under two years with 650/month", plan.Months)
	}
}

func payoffFixture(t *testing.T) []*Debt {
	t.Helper()
	return []*Debt{
		testDebt(t, "mortgage", 500000, 2500, "0.03"),
		testDebt(t, "card", 20000, 600, "0.20"),
		testDebt(t, "car", 80000, 1500, "0.06"),
	}
}

func TestAvalancheBeatsSnowballOnInterest(t *testing.T) {
	on := day(2026, time.January, 1)
	extra := SEK(2000)

	avalanche, err := PlanDebtPayoff(payoffFixture(t), Avalanche, extra, on)
	if err != nil {
		t.Fatalf("avalanche plan failed: %v", err)
	}
	snowball, err := PlanDebtPayoff(payoffFixture(t), Snowball, extra, on)
	if err != nil {
		t.Fatalf("snowball plan failed: %v", err)
	}

	if avalanche.TotalInterest.GreaterThan(snowball.TotalInterest) {
		t.Errorf("avalanche interest %s exceeds snowball interest %s",
			avalanche.TotalInterest, snowball.TotalInterest)
	}
}

func TestPayoffOrder(t *testing.T) {
	on := day(2026, time.January, 1)

	avalanche, err := PlanDebtPayoff(payoffFixture(t), Avalanche, SEK(2000), on)
	if err != nil {
		t.Fatalf("avalanche plan failed: %v", err)
	}
	// Highest rate first: the card leads the avalanche order.
	if avalanche.Debts[0].Name != "card" {
		t.Errorf("avalanche attacks %q first, want card", avalanche.Debts[0].Name)
	}

	snowball, err := PlanDebtPayoff(payoffFixture(t), Snowball, SEK(2000), on)
	if err != nil {
		t.Fatalf("snowball plan failed: %v", err)
	}
	// Smallest balance first: also the card here, but the second target
	// differs between strategies.
	if snowball.Debts[1].Name != "car" {
		t.Errorf("snowball attacks %q second, want car", snowball.Debts[1].Name)
	}
	if avalanche.Debts[1].Name != "car" {
		t.Errorf("avalanche attacks %q second, want car", avalanche.Debts[1].Name)
	}
}

func TestPlanDebtPayoffValidation(t *testing.T) {
	on := day(2026, time.January, 1)
	if _, err := PlanDebtPayoff(nil, Avalanche, SEK(0), on); !IsValidation(err) {
		t.Errorf("empty debts: expected a validation error, got %v", err)
	}
	debt := testDebt(t, "card", 10000, 250, "0.18")
	if _, err := PlanDebtPayoff([]*Debt{debt}, Avalanche, SEK(-1), on); !IsValidation(err) {
		t.Errorf("negative extra: expected a validation error, got %v", err)
	}
	paid := testDebt(t, "done", 100, 100, "0.05")
	paid.Balance = SEK(0)
	if _, err := PlanDebtPayoff([]*Debt{paid}, Avalanche, SEK(0), on); !IsValidation(err) {
		t.Errorf("zero balance: expected a validation error, got %v", err)
	}
}

func TestApplyPayment(t *testing.T) {
	debt := testDebt(t, "card", 1000, 100, "0.10")
	on := day(2026, time.February, 1)

	paidOff, err := debt.ApplyPayment(SEK(400), on)
	if err != nil || paidOff {
		t.Fatalf("partial payment = (%v, %v), want (false, nil)", paidOff, err)
	}
	if !debt.Balance.Equal(SEK(600)) {
		t.Errorf("balance = %s, want %s", debt.Balance, SEK(600))
	}

	// Overpayment clamps at zero and pays the debt off exactly once.
	paidOff, err = debt.ApplyPayment(SEK(1000), on)
	if err != nil || !paidOff {
		t.Fatalf("final payment = (%v, %v), want (true, nil)", paidOff, err)
	}
	if !debt.Balance.IsZero() {
		t.Errorf("balance = %s, want zero", debt.Balance)
	}
	if debt.Status != DebtPaidOff {
		t.Errorf("status = %s, want paid_off", debt.Status)
	}
	if _, err := debt.ApplyPayment(SEK(1), on); err == nil {
		t.Error("payment on a paid off debt should fail")
	}
}
