package order

import (
	"errors"

	"bottleworks/internal/pkg/guard"
)

// ErrValidationResultIsNotConstructed is returned when a ValidationResult
// was not created through NewValidationResult.
var ErrValidationResultIsNotConstructed = errors.New(
	"ValidationResult must be created via NewValidationResult constructor")

// ValidationResult is the transition validator's verdict for one requested
// status change. It is a value object, never persisted.
//
// The blocker and warning strings carry operator-meaningful detail (for
// example "deposit unpaid" or "no workflow steps defined") and must be
// surfaced to staff verbatim.
type ValidationResult struct { //nolint:recvcheck //using for validation
	valid            bool
	currentStatus    Status
	newStatus        Status
	warnings         []string
	blockers         []string
	requiresOverride bool

	guard guard.ConstructorGuard
}

// NewValidationResult creates a validator verdict. A result with blockers
// is never valid; a result with only warnings is valid but flagged.
func NewValidationResult(
	currentStatus Status,
	newStatus Status,
	warnings []string,
	blockers []string,
	requiresOverride bool,
) (ValidationResult, error) {
	result := ValidationResult{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		result.setStatuses(currentStatus, newStatus),
	); err != nil {
		return ValidationResult{}, err
	}

	result.warnings = append([]string(nil), warnings...)
	result.blockers = append([]string(nil), blockers...)
	result.requiresOverride = requiresOverride
	result.valid = len(blockers) == 0

	return result, nil
}

// Validate ensures the result was created through the constructor.
func (r ValidationResult) Validate() error {
	return r.guard.Validate(ErrValidationResultIsNotConstructed)
}

// Valid reports whether the transition is allowed at all (no blockers).
func (r ValidationResult) Valid() bool {
	return r.valid
}

// CurrentStatus returns the status the validator observed on the order.
func (r ValidationResult) CurrentStatus() Status {
	return r.currentStatus
}

// NewStatus returns the requested target status.
func (r ValidationResult) NewStatus() Status {
	return r.newStatus
}

// Warnings returns the validator's warning strings, verbatim.
func (r ValidationResult) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

// Blockers returns the validator's blocker strings, verbatim.
func (r ValidationResult) Blockers() []string {
	return append([]string(nil), r.blockers...)
}

// RequiresOverride reports whether the transition needs a logged
// justification note.
func (r ValidationResult) RequiresOverride() bool {
	return r.requiresOverride
}

func (r *ValidationResult) setStatuses(currentStatus, newStatus Status) error {
	if err := errors.Join(currentStatus.Validate(), newStatus.Validate()); err != nil {
		return err
	}

	r.currentStatus = currentStatus
	r.newStatus = newStatus
	return nil
}
