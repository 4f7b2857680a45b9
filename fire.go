package wealth

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FIREInputs are the figures the financial independence projection runs on.
// Rates are decimal fractions (0.07 = 7%).
type FIREInputs struct {
	AnnualExpenses Money           `json:"annual_expenses"`
	CurrentSavings Money           `json:"current_savings"`
	AnnualSavings  Money           `json:"annual_savings"`
	ExpectedReturn decimal.Decimal `json:"expected_return"`
	WithdrawalRate decimal.Decimal `json:"withdrawal_rate"`
}

// FIREResult is an append-only projection record.
type FIREResult struct {
	Inputs       FIREInputs `json:"inputs"`
	FIRENumber   Money      `json:"fire_number"`
	YearsToFIRE  float64    `json:"years_to_fire"`
	FIREDate     Date       `json:"fire_date"`
	CalculatedAt Date       `json:"calculated_at"`
}

// fireHorizonYears bounds the root finding domain. A target that is not
// reachable within a century is reported as unreachable rather than as an
// absurd number.
const fireHorizonYears = 100

// ProjectFIRE computes the FIRE number (annual expenses divided by the
// withdrawal rate) and solves the future-value-of-growing-annuity relation
//
//	fireNumber = savings*(1+r)^n + annual*((1+r)^n - 1)/r
//
// for the number of years n by bisection over [0, 100]. If the current
// savings already cover the FIRE number, YearsToFIRE is zero. A projection
// that cannot reach the target within the horizon fails with
// ErrUnreachableGoal.
func ProjectFIRE(in FIREInputs, on Date) (*FIREResult, error) {
	if !in.AnnualExpenses.IsPositive() {
		return nil, invalidf("annual_expenses", "must be positive, got %s", in.AnnualExpenses)
	}
	if in.CurrentSavings.IsNegative() {
		return nil, invalidf("current_savings", "must not be negative, got %s", in.CurrentSavings)
	}
	if !in.WithdrawalRate.IsPositive() || in.WithdrawalRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, invalidf("withdrawal_rate", "must be in (0,1), got %s", in.WithdrawalRate)
	}
	if in.ExpectedReturn.LessThan(decimal.NewFromInt(-1)) || in.ExpectedReturn.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, invalidf("expected_return", "must be in [-1,1), got %s", in.ExpectedReturn)
	}

	fireNumber := in.AnnualExpenses.Div(in.WithdrawalRate)
	result := &FIREResult{
		Inputs:       in,
		FIRENumber:   fireNumber,
		CalculatedAt: on,
	}

	if in.CurrentSavings.GreaterThanOrEqual(fireNumber) {
		result.YearsToFIRE = 0
		result.FIREDate = on
		return result, nil
	}

	// The solve runs in float64: years-to-FIRE is a continuous estimate,
	// not a monetary amount.
	target := fireNumber.AsFloat()
	savings := in.CurrentSavings.AsFloat()
	annual := in.AnnualSavings.AsFloat()
	r := in.ExpectedReturn.InexactFloat64()

	fv := func(n float64) float64 {
		if r == 0 {
			return savings + annual*n
		}
		growth := math.Pow(1+r, n)
		return savings*growth + annual*(growth-1)/r
	}

	if fv(fireHorizonYears) < target {
		return nil, fmt.Errorf("fire number %s not reachable within %d years: %w",
			fireNumber, fireHorizonYears, ErrUnreachableGoal)
	}

	lo, hi := 0.0, float64(fireHorizonYears)
	for i := 0; i < 200 && hi-lo > 1e-6; i++ {
		mid := (lo + hi) / 2
		if fv(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	years := (lo + hi) / 2

	result.YearsToFIRE = years
	result.FIREDate = on.AddMonth(int(math.Ceil(years * 12)))
	return result, nil
}

// Scenario perturbs one or more projection inputs. Nil fields keep the
// baseline value, so each scenario states exactly what it changes.
type Scenario struct {
	Name           string           `json:"name" yaml:"name"`
	AnnualExpenses *Money           `json:"annual_expenses,omitempty" yaml:"annual_expenses"`
	CurrentSavings *Money           `json:"current_savings,omitempty" yaml:"current_savings"`
	AnnualSavings  *Money           `json:"annual_savings,omitempty" yaml:"annual_savings"`
	ExpectedReturn *decimal.Decimal `json:"expected_return,omitempty" yaml:"expected_return"`
	WithdrawalRate *decimal.Decimal `json:"withdrawal_rate,omitempty" yaml:"withdrawal_rate"`
}

// apply returns the baseline inputs with the scenario's overrides set.
func (s Scenario) apply(base FIREInputs) FIREInputs {
	if s.AnnualExpenses != nil {
		base.AnnualExpenses = *s.AnnualExpenses
	}
	if s.CurrentSavings != nil {
		base.CurrentSavings = *s.CurrentSavings
	}
	if s.AnnualSavings != nil {
		base.AnnualSavings = *s.AnnualSavings
	}
	if s.ExpectedReturn != nil {
		base.ExpectedReturn = *s.ExpectedReturn
	}
	if s.WithdrawalRate != nil {
		base.WithdrawalRate = *s.WithdrawalRate
	}
	return base
}

// ScenarioResult reports one scenario's projection next to the baseline.
type ScenarioResult struct {
	Name        string  `json:"name"`
	FIRENumber  Money   `json:"fire_number"`
	YearsToFIRE float64 `json:"years_to_fire"`
	DeltaYears  float64 `json:"delta_years"` // versus baseline, negative is sooner
	Unreachable bool    `json:"unreachable,omitempty"`
}

// CompareFIREScenarios projects the baseline and every scenario, reporting
// each scenario's years-to-FIRE delta against the baseline. A scenario that
// cannot converge is flagged unreachable instead of failing the comparison;
// an invalid scenario input still fails fast.
func CompareFIREScenarios(base FIREInputs, scenarios []Scenario, on Date) (*FIREResult, []ScenarioResult, error) {
	baseline, err := ProjectFIRE(base, on)
	if err != nil {
		return nil, nil, err
	}

	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		projected, err := ProjectFIRE(sc.apply(base), on)
		if err != nil {
			if IsValidation(err) {
				return nil, nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			results = append(results, ScenarioResult{Name: sc.Name, Unreachable: true})
			continue
		}
		results = append(results, ScenarioResult{
			Name:        sc.Name,
			FIRENumber:  projected.FIRENumber,
			YearsToFIRE: projected.YearsToFIRE,
			DeltaYears:  projected.YearsToFIRE - baseline.YearsToFIRE,
		})
	}
	return baseline, results, nil
}
