package wealth

import (
	"github.com/google/uuid"
)

// Profile is the root record of one person's financial state. Every other
// per-person record references it by ID; calculators receive that ID
// explicitly and never reach for any ambient "current profile".
type Profile struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Currency string `json:"currency"`

	Occupation string `json:"occupation,omitempty"`
	Industry   string `json:"industry,omitempty"`

	// Onboarding is a simple linear wizard; the step only moves forward.
	OnboardingStep      int  `json:"onboarding_step"`
	OnboardingCompleted bool `json:"onboarding_completed"`

	// EmergencyFundTargetMonths is how many months of expenses the person
	// aims to keep liquid. Feeds the protection score.
	EmergencyFundTargetMonths int `json:"emergency_fund_target_months,omitempty"`

	CreatedAt Date `json:"created_at"`
}

// NewProfile creates a profile with a fresh ID, starting at onboarding step 1.
func NewProfile(userID, currency string) *Profile {
	return &Profile{
		ID:                        uuid.NewString(),
		UserID:                    userID,
		Currency:                  currency,
		OnboardingStep:            1,
		EmergencyFundTargetMonths: 6,
		CreatedAt:                 Today(),
	}
}

// AdvanceOnboarding moves the wizard to the given step. The progression is
// strictly forward; moving backwards is a validation error.
func (p *Profile) AdvanceOnboarding(step int) error {
	if step < p.OnboardingStep {
		return invalidf("onboarding_step", "cannot decrease from %d to %d", p.OnboardingStep, step)
	}
	p.OnboardingStep = step
	return nil
}

// CompleteOnboarding marks the wizard as done. Idempotent.
func (p *Profile) CompleteOnboarding() {
	p.OnboardingCompleted = true
}

// Zero returns a zero Money in the profile's currency.
func (p *Profile) Zero() Money { return M(0, p.Currency) }
