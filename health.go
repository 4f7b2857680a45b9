package wealth

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ScorePolicy holds the weights of the five health dimensions. The weights
// are policy, not physics: they must be non-negative and sum to 1.0, but the
// split between dimensions is a product decision and can be tuned per
// deployment via a YAML policy file.
type ScorePolicy struct {
	Savings    float64 `yaml:"savings" json:"savings"`
	Debt       float64 `yaml:"debt" json:"debt"`
	Investment float64 `yaml:"investment" json:"investment"`
	Budget     float64 `yaml:"budget" json:"budget"`
	Protection float64 `yaml:"protection" json:"protection"`
}

// DefaultScorePolicy returns the standard weight split.
func DefaultScorePolicy() ScorePolicy {
	return ScorePolicy{Savings: 0.25, Debt: 0.25, Investment: 0.20, Budget: 0.15, Protection: 0.15}
}

// Validate checks that weights are non-negative and sum to 1.0.
func (p ScorePolicy) Validate() error {
	sum := 0.0
	for _, w := range []float64{p.Savings, p.Debt, p.Investment, p.Budget, p.Protection} {
		if w < 0 {
			return invalidf("score_policy", "weights must not be negative")
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return invalidf("score_policy", "weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// ParseScorePolicy reads a weight policy from YAML.
func ParseScorePolicy(data []byte) (ScorePolicy, error) {
	var p ScorePolicy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("cannot parse score policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Holding is one investment position, used for the diversification score.
type Holding struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	AssetType string `json:"asset_type"` // stock, fund, etf, bond, crypto, real_estate
	Value     Money  `json:"current_value"`
}

// CategorySpend compares one budget category's plan against its actuals.
type CategorySpend struct {
	Category string `json:"category"`
	Budgeted Money  `json:"budgeted"`
	Actual   Money  `json:"actual"`
}

// HealthInputs is everything the composite health score reads. Values are
// plain decrypted numerics supplied by the caller.
type HealthInputs struct {
	MonthlyIncome   Money           `json:"monthly_income"`
	MonthlyExpenses Money           `json:"monthly_expenses"`
	EmergencyFund   Money           `json:"emergency_fund"`
	Debts           []*Debt         `json:"debts"`
	Holdings        []Holding       `json:"holdings"`
	Budget          []CategorySpend `json:"budget"`
	NetWorthGrowth  Percent         `json:"net_worth_growth"` // recent period growth
	HasLifeCover    bool            `json:"has_life_cover"`
	HasHomeCover    bool            `json:"has_home_cover"`
	HasIncomeCover  bool            `json:"has_income_cover"`
}

// HealthScore is the composite 0-100 score with its five sub-scores,
// a per-dimension breakdown of the driving factors, and recommendations
// ordered from the weakest dimension up. Recomputing over identical inputs
// yields an identical score.
type HealthScore struct {
	Total int `json:"total_score"`

	Savings    int `json:"savings_score"`
	Debt       int `json:"debt_score"`
	Investment int `json:"investment_score"`
	Budget     int `json:"budget_score"`
	Protection int `json:"protection_score"`

	Breakdown       map[string][]string `json:"breakdown"`
	Recommendations []string            `json:"recommendations"`

	Policy       ScorePolicy `json:"policy"`
	CalculatedAt Date        `json:"calculated_at"`
}

// clampScore bounds a sub-score to [0,100].
func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// ScoreFinancialHealth computes the composite health score under the given
// weight policy.
func ScoreFinancialHealth(in HealthInputs, policy ScorePolicy, on Date) (*HealthScore, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if in.MonthlyIncome.IsNegative() {
		return nil, invalidf("monthly_income", "must not be negative, got %s", in.MonthlyIncome)
	}
	if in.MonthlyExpenses.IsNegative() {
		return nil, invalidf("monthly_expenses", "must not be negative, got %s", in.MonthlyExpenses)
	}
	if in.EmergencyFund.IsNegative() {
		return nil, invalidf("emergency_fund", "must not be negative, got %s", in.EmergencyFund)
	}
	for _, d := range in.Debts {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	score := &HealthScore{
		Breakdown:    make(map[string][]string),
		Policy:       policy,
		CalculatedAt: on,
	}

	score.Savings = clampScore(scoreSavings(in, score.Breakdown))
	score.Debt = clampScore(scoreDebt(in, score.Breakdown))
	score.Investment = clampScore(scoreInvestment(in, score.Breakdown))
	score.Budget = clampScore(scoreBudget(in, score.Breakdown))
	score.Protection = clampScore(scoreProtection(in, score.Breakdown))

	total := float64(score.Savings)*policy.Savings +
		float64(score.Debt)*policy.Debt +
		float64(score.Investment)*policy.Investment +
		float64(score.Budget)*policy.Budget +
		float64(score.Protection)*policy.Protection
	score.Total = clampScore(int(math.Round(total)))

	score.Recommendations = recommend(score)
	return score, nil
}

// emergencyMonths returns how many months of expenses the emergency fund covers.
func emergencyMonths(in HealthInputs) float64 {
	if !in.MonthlyExpenses.IsPositive() {
		if in.EmergencyFund.IsPositive() {
			return math.Inf(1)
		}
		return 0
	}
	return in.EmergencyFund.Ratio(in.MonthlyExpenses).InexactFloat64()
}

// scoreSavings bands the emergency fund coverage (up to 60 points) and the
// savings rate (up to 40 points).
func scoreSavings(in HealthInputs, breakdown map[string][]string) int {
	months := emergencyMonths(in)
	var s int
	switch {
	case months >= 6:
		s = 60
	case months >= 3:
		s = 45
	case months >= 1:
		s = 25
	case months > 0:
		s = 10
	}
	breakdown["savings"] = append(breakdown["savings"],
		fmt.Sprintf("emergency fund covers %.1f months of expenses", months))

	if in.MonthlyIncome.IsPositive() {
		rate := in.MonthlyIncome.Sub(in.MonthlyExpenses).Ratio(in.MonthlyIncome).InexactFloat64()
		switch {
		case rate >= 0.20:
			s += 40
		case rate >= 0.10:
			s += 30
		case rate >= 0.05:
			s += 20
		case rate > 0:
			s += 10
		}
		breakdown["savings"] = append(breakdown["savings"],
			fmt.Sprintf("savings rate is %.0f%% of income", rate*100))
	} else {
		breakdown["savings"] = append(breakdown["savings"], "no income recorded")
	}
	return s
}

// scoreDebt bands the debt-to-income ratio (up to 60 points, lower is
// better) and the balance-weighted average interest rate (up to 40 points).
func scoreDebt(in HealthInputs, breakdown map[string][]string) int {
	active := make([]*Debt, 0, len(in.Debts))
	for _, d := range in.Debts {
		if d.Status == DebtActive && d.Balance.IsPositive() {
			active = append(active, d)
		}
	}
	if len(active) == 0 {
		breakdown["debt"] = append(breakdown["debt"], "debt free")
		return 100
	}

	monthlyPayments := M(0, in.MonthlyIncome.Currency())
	totalBalance := M(0, in.MonthlyIncome.Currency())
	weightedRate := decimal.Zero
	for _, d := range active {
		monthlyPayments = monthlyPayments.Add(d.MinPayment)
		totalBalance = totalBalance.Add(d.Balance)
		weightedRate = weightedRate.Add(d.Rate.Mul(d.Balance.Amount()))
	}
	weightedRate = weightedRate.Div(totalBalance.Amount())

	var s int
	if in.MonthlyIncome.IsPositive() {
		dti := monthlyPayments.Ratio(in.MonthlyIncome).InexactFloat64()
		switch {
		case dti <= 0.10:
			s = 60
		case dti <= 0.20:
			s = 45
		case dti <= 0.36:
			s = 30
		case dti <= 0.50:
			s = 15
		}
		breakdown["debt"] = append(breakdown["debt"],
			fmt.Sprintf("debt payments take %.0f%% of income", dti*100))
	} else {
		breakdown["debt"] = append(breakdown["debt"], "debt with no recorded income")
	}

	rate := weightedRate.InexactFloat64()
	switch {
	case rate < 0.03:
		s += 40
	case rate < 0.06:
		s += 30
	case rate < 0.10:
		s += 20
	case rate < 0.18:
		s += 10
	}
	breakdown["debt"] = append(breakdown["debt"],
		fmt.Sprintf("weighted average interest rate is %.1f%%", rate*100))
	return s
}

// scoreInvestment bands diversification (asset type count up to 40 points,
// concentration of the largest holding up to 30) and recent growth (up to 30).
func scoreInvestment(in HealthInputs, breakdown map[string][]string) int {
	if len(in.Holdings) == 0 {
		breakdown["investment"] = append(breakdown["investment"], "no investment holdings")
		return 0
	}

	types := make(map[string]bool)
	total := M(0, in.Holdings[0].Value.Currency())
	largest := M(0, in.Holdings[0].Value.Currency())
	for _, h := range in.Holdings {
		types[h.AssetType] = true
		total = total.Add(h.Value)
		if h.Value.GreaterThan(largest) {
			largest = h.Value
		}
	}

	var s int
	switch n := len(types); {
	case n >= 4:
		s = 40
	case n == 3:
		s = 30
	case n == 2:
		s = 20
	default:
		s = 10
	}
	breakdown["investment"] = append(breakdown["investment"],
		fmt.Sprintf("holdings span %d asset types", len(types)))

	if total.IsPositive() {
		share := largest.Ratio(total).InexactFloat64()
		switch {
		case share <= 0.25:
			s += 30
		case share <= 0.50:
			s += 20
		case share <= 0.75:
			s += 10
		}
		breakdown["investment"] = append(breakdown["investment"],
			fmt.Sprintf("largest holding is %.0f%% of the portfolio", share*100))
	}

	switch g := float64(in.NetWorthGrowth); {
	case g >= 5:
		s += 30
	case g >= 0:
		s += 20
	case g >= -5:
		s += 10
	}
	breakdown["investment"] = append(breakdown["investment"],
		fmt.Sprintf("recent growth is %s", in.NetWorthGrowth.SignedString()))
	return s
}

// scoreBudget starts from full marks and penalizes categories running over
// plan; anything above 110% of its budget costs double.
func scoreBudget(in HealthInputs, breakdown map[string][]string) int {
	budgeted := 0
	s := 100
	for _, c := range in.Budget {
		if !c.Budgeted.IsPositive() {
			continue
		}
		budgeted++
		ratio := c.Actual.Ratio(c.Budgeted).InexactFloat64()
		switch {
		case ratio > 1.10:
			s -= 20
			breakdown["budget"] = append(breakdown["budget"],
				fmt.Sprintf("%s is at %.0f%% of budget", c.Category, ratio*100))
		case ratio > 1.0:
			s -= 10
			breakdown["budget"] = append(breakdown["budget"],
				fmt.Sprintf("%s is slightly over budget (%.0f%%)", c.Category, ratio*100))
		}
	}
	if budgeted == 0 {
		breakdown["budget"] = append(breakdown["budget"], "no budget categories set up")
		return 0
	}
	if len(breakdown["budget"]) == 0 {
		breakdown["budget"] = append(breakdown["budget"], "all categories within budget")
	}
	return s
}

// scoreProtection bands emergency fund adequacy (up to 50 points) and
// insurance coverage flags (up to 50).
func scoreProtection(in HealthInputs, breakdown map[string][]string) int {
	months := emergencyMonths(in)
	var s int
	switch {
	case months >= 6:
		s = 50
	case months >= 3:
		s = 30
	case months >= 1:
		s = 15
	}

	covered := 0
	for _, has := range []bool{in.HasLifeCover, in.HasHomeCover, in.HasIncomeCover} {
		if has {
			covered++
		}
	}
	s += (covered * 50) / 3
	breakdown["protection"] = append(breakdown["protection"],
		fmt.Sprintf("%d of 3 insurance covers in place", covered))
	if months < 3 {
		breakdown["protection"] = append(breakdown["protection"], "emergency fund below three months")
	}
	return s
}

// recommendation texts per dimension, weakest dimension first in the output.
var recommendationText = map[string]string{
	"savings":    "grow the emergency fund and raise the monthly savings rate",
	"debt":       "pay down high-interest debt first to cut the average rate",
	"investment": "spread holdings across more asset types to reduce concentration",
	"budget":     "rein in the categories running over their monthly budget",
	"protection": "close the insurance gaps and keep three to six months of expenses liquid",
}

// recommend orders the dimensions from weakest to strongest and emits one
// recommendation per dimension scoring below 80.
func recommend(score *HealthScore) []string {
	type dim struct {
		name  string
		value int
	}
	dims := []dim{
		{"savings", score.Savings},
		{"debt", score.Debt},
		{"investment", score.Investment},
		{"budget", score.Budget},
		{"protection", score.Protection},
	}
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].value < dims[j].value })

	var recs []string
	for _, d := range dims {
		if d.value < 80 {
			recs = append(recs, recommendationText[d.name])
		}
	}
	return recs
}
