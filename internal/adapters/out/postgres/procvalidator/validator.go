// Package procvalidator implements the TransitionValidator port on top of
// a PostgreSQL function. The application never re-derives the transition
// graph; it forwards the question to the database and interprets the
// verdict rows that come back.
package procvalidator

import (
	"context"
	"strings"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/pkg/errs"

	"gorm.io/gorm"
)

// ProcTransitionValidator asks the validate_order_transition database
// function for transition verdicts.
type ProcTransitionValidator struct {
	db *gorm.DB
}

// NewProcTransitionValidator creates a validator bound to a GORM connection.
func NewProcTransitionValidator(db *gorm.DB) *ProcTransitionValidator {
	return &ProcTransitionValidator{db: db}
}

// EnsureFunction installs or refreshes the validator function. Called
// from the composition root after migrations.
func (v *ProcTransitionValidator) EnsureFunction(ctx context.Context) error {
	if err := v.db.WithContext(ctx).Exec(transitionFunctionDDL).Error; err != nil {
		return errs.NewUpstreamUnavailableError("transition validator", err)
	}
	return nil
}

// Validate obtains the verdict for moving the order to newStatus.
func (v *ProcTransitionValidator) Validate(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) (order.ValidationResult, error) {
	if err := orderID.Validate(); err != nil {
		return order.ValidationResult{}, err
	}
	if err := newStatus.Validate(); err != nil {
		return order.ValidationResult{}, err
	}

	row := v.db.WithContext(ctx).Raw(`
		SELECT current_status, warnings, blockers, requires_override
		FROM validate_order_transition(?, ?)
	`, orderID.Bytes(), int(newStatus)).Row()

	var currentStatus int
	var warnings, blockers string
	var requiresOverride bool

	if err := row.Scan(&currentStatus, &warnings, &blockers, &requiresOverride); err != nil {
		return order.ValidationResult{}, errs.NewUpstreamUnavailableError("transition validator", err)
	}

	if currentStatus < 0 {
		return order.ValidationResult{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	return order.NewValidationResult(
		order.Status(currentStatus),
		newStatus,
		splitMessages(warnings),
		splitMessages(blockers),
		requiresOverride,
	)
}

func splitMessages(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "\n")
}
