package ports

import (
	"context"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
)

// TransitionValidator is the remote authority on order status transitions.
// The transition graph and its business checks live behind this port; the
// core never re-derives the rules, it only interprets the returned verdict.
type TransitionValidator interface {
	// Validate asks whether the order may move to newStatus from its
	// current state. The verdict carries the status the decision was
	// made against, plus any blockers and warnings.
	//
	// Returns errs.UpstreamUnavailableError when the validator cannot be
	// reached; in that case no transition may proceed, override or not.
	Validate(ctx context.Context, orderID kernel.UUID, newStatus order.Status) (order.ValidationResult, error)
}
