package ports

import (
	"context"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch aggregates,
// including their workflow steps.
type BatchRepository interface {
	// Add persists a new batch aggregate with all four workflow steps.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate. The write
	// is conditional on the aggregate's version matching the stored row;
	// a lost race surfaces as errs.ConflictingUpdateError.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its unique identifier, with its
	// workflow steps in pipeline order.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetByUID retrieves a batch by its scan code, as read from a
	// printed label on the production floor.
	GetByUID(ctx context.Context, uid string) (*batch.Batch, error)

	// GetAllByOrder retrieves all batches of one order, ordered by
	// priority index.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*batch.Batch, error)

	// Delete removes a batch and its workflow steps. Split and merge use
	// it to retire consumed batches inside the same transaction that
	// adds their replacements.
	Delete(ctx context.Context, id kernel.UUID) error
}
