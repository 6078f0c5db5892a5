package queries

import (
	"errors"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var ErrGetProductionQueueQueryIsNotConstructed = errors.New(
	"GetProductionQueueQuery must be created via NewGetProductionQueueQuery constructor",
)

// GetProductionQueueQuery retrieves all unfinished batches across orders,
// in priority order. This is the floor's daily worklist.
//
// Example:
//
//	query := NewGetProductionQueueQuery()
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get production queue: %w", err)
//	}
//	for _, item := range queue {
//	    fmt.Printf("%s (%s): %s\n", item.HumanUID, item.OrderHumanUID, item.Status)
//	}
type GetProductionQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductionQueueQuery creates a query for the production queue.
// This is a parameterless query that fetches all non-complete batches.
func NewGetProductionQueueQuery() GetProductionQueueQuery {
	return GetProductionQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductionQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionQueueQueryIsNotConstructed)
}

// GetProductionQueueQueryResponse is one batch in the production queue.
type GetProductionQueueQueryResponse struct {
	BatchID       kernel.UUID
	UID           string
	HumanUID      string
	OrderID       kernel.UUID
	OrderHumanUID string
	Status        string
	QtyPlanned    int
	StepsDone     int
	StepsTotal    int
	PriorityIndex int
}
