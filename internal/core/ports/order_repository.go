// Package ports defines the contracts between the application core and
// infrastructure. These interfaces establish dependency inversion for
// persistence, the remote transition validator, payment capture, the audit
// trail and customer notifications.
package ports

import (
	"context"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is conditional on the aggregate's version matching the
	// stored row; a lost race surfaces as errs.ConflictingUpdateError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByHumanUID retrieves an order by its human-readable identifier
	// as printed on paperwork and quote links.
	GetByHumanUID(ctx context.Context, humanUID string) (*order.Order, error)

	// GetAllWithLapsedQuotes retrieves orders sitting in quote_sent whose
	// quote expiry deadline has passed. Used by the expiry sweep job.
	GetAllWithLapsedQuotes(ctx context.Context) ([]*order.Order, error)
}
