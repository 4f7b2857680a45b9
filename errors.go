package wealth

import (
	"errors"
	"fmt"
)

// Sentinel errors for the calculator failure modes. Callers test them with
// errors.Is; calculators wrap them with context using %w.
var (
	// ErrInsufficientHistory is returned when a trend or comparison needs
	// data that is not present yet (fewer than two snapshots, no prior period).
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrDebtNeverPaysOff is returned when the payoff simulation exceeds its
	// iteration cap because some minimum payment does not cover accruing interest.
	ErrDebtNeverPaysOff = errors.New("debt never pays off")

	// ErrUnreachableGoal is returned when the FIRE projection cannot converge
	// within the solvable horizon.
	ErrUnreachableGoal = errors.New("unreachable goal")

	// ErrDuplicateUnlock flags an attempt to unlock an already-unlocked
	// achievement. Evaluation treats the condition as a no-op and never
	// surfaces it as a failure.
	ErrDuplicateUnlock = errors.New("achievement already unlocked")
)

// ValidationError reports a malformed or out-of-range calculator input.
// Calculators validate locally and fail fast with this type rather than
// clamping a domain error into a misleading number.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// invalidf builds a ValidationError with a formatted reason.
func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
