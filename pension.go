package wealth

import (
	"math"

	"github.com/shopspring/decimal"
)

// PensionInputs are the figures a retirement income forecast runs on.
// Rates are decimal fractions.
type PensionInputs struct {
	CurrentAge    int `json:"current_age"`
	RetirementAge int `json:"retirement_age"`

	CurrentPension  Money `json:"current_pension_savings"`
	MonthlySaving   Money `json:"monthly_pension_saving"`
	MonthlyIncome   Money `json:"monthly_income"`
	StatePensionEst Money `json:"state_pension_estimate"` // expected monthly state pension

	ExpectedReturn decimal.Decimal `json:"expected_return"`
	WithdrawalRate decimal.Decimal `json:"withdrawal_rate"`

	TargetReplacement Percent `json:"target_replacement"` // share of current income, 70 by default
}

// PensionForecast projects retirement income against a replacement target.
type PensionForecast struct {
	Inputs PensionInputs `json:"inputs"`

	ProjectedPot    Money   `json:"projected_pot"`
	MonthlyFromPot  Money   `json:"monthly_from_pot"`
	MonthlyIncome   Money   `json:"projected_monthly_income"` // pot drawdown plus state pension
	TargetIncome    Money   `json:"target_monthly_income"`
	Gap             Money   `json:"monthly_gap"` // negative means surplus
	ReplacementRate Percent `json:"replacement_rate"`

	// AdditionalSavingsNeeded is the extra monthly saving that closes the
	// gap, zero when the target is already met.
	AdditionalSavingsNeeded Money `json:"additional_savings_needed"`

	CalculatedAt Date `json:"calculated_at"`
}

// ForecastPension projects the pension pot at retirement with monthly
// compounding, derives the sustainable monthly income from the withdrawal
// rate plus the state pension, and compares it against the replacement
// target. When the projection falls short it solves the annuity relation for
// the extra monthly saving that would close the gap.
func ForecastPension(in PensionInputs, on Date) (*PensionForecast, error) {
	if in.CurrentAge <= 0 {
		return nil, invalidf("current_age", "must be positive, got %d", in.CurrentAge)
	}
	if in.RetirementAge <= in.CurrentAge {
		return nil, invalidf("retirement_age", "%d must be after the current age %d", in.RetirementAge, in.CurrentAge)
	}
	if in.CurrentPension.IsNegative() {
		return nil, invalidf("current_pension_savings", "must not be negative, got %s", in.CurrentPension)
	}
	if in.MonthlySaving.IsNegative() {
		return nil, invalidf("monthly_pension_saving", "must not be negative, got %s", in.MonthlySaving)
	}
	if !in.WithdrawalRate.IsPositive() || in.WithdrawalRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, invalidf("withdrawal_rate", "must be in (0,1), got %s", in.WithdrawalRate)
	}
	if in.ExpectedReturn.LessThan(decimal.NewFromInt(-1)) || in.ExpectedReturn.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, invalidf("expected_return", "must be in [-1,1), got %s", in.ExpectedReturn)
	}
	if in.TargetReplacement <= 0 {
		in.TargetReplacement = 70
	}

	currency := in.CurrentPension.Currency()
	months := (in.RetirementAge - in.CurrentAge) * 12
	monthlyRate := in.ExpectedReturn.InexactFloat64() / 12

	// Future value of the pot with monthly contributions.
	pot := in.CurrentPension.AsFloat()
	saving := in.MonthlySaving.AsFloat()
	var projected float64
	if monthlyRate == 0 {
		projected = pot + saving*float64(months)
	} else {
		growth := math.Pow(1+monthlyRate, float64(months))
		projected = pot*growth + saving*(growth-1)/monthlyRate
	}
	projectedPot := M(projected, currency)

	monthlyFromPot := projectedPot.Mul(in.WithdrawalRate).DivInt(12)
	monthlyIncome := monthlyFromPot.Add(in.StatePensionEst)
	targetIncome := in.MonthlyIncome.Mul(decimal.NewFromFloat(float64(in.TargetReplacement) / 100))

	forecast := &PensionForecast{
		Inputs:         in,
		ProjectedPot:   projectedPot,
		MonthlyFromPot: monthlyFromPot,
		MonthlyIncome:  monthlyIncome,
		TargetIncome:   targetIncome,
		Gap:            targetIncome.Sub(monthlyIncome),
		CalculatedAt:   on,
	}
	if in.MonthlyIncome.IsPositive() {
		forecast.ReplacementRate = Percent(monthlyIncome.Ratio(in.MonthlyIncome).InexactFloat64() * 100)
	}

	forecast.AdditionalSavingsNeeded = M(0, currency)
	if forecast.Gap.IsPositive() {
		// The missing pot is the gap grossed back up through the
		// withdrawal rate; solve the annuity for the extra saving.
		missingPot := forecast.Gap.Mul(decimal.NewFromInt(12)).Div(in.WithdrawalRate).AsFloat()
		var extra float64
		if monthlyRate == 0 {
			extra = missingPot / float64(months)
		} else {
			growth := math.Pow(1+monthlyRate, float64(months))
			extra = missingPot * monthlyRate / (growth - 1)
		}
		forecast.AdditionalSavingsNeeded = M(extra, currency)
	}
	return forecast, nil
}
