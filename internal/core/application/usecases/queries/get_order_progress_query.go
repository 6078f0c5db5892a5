// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projections straight from
// the database.
package queries

import (
	"errors"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var ErrGetOrderProgressQueryIsNotConstructed = errors.New(
	"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
)

// GetOrderProgressQuery retrieves the production progress of one order:
// its lifecycle status, deposit state, bottle totals across batches, and
// per-batch step progress.
//
// Example:
//
//	query, err := NewGetOrderProgressQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	progress, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order progress: %w", err)
//	}
//	fmt.Printf("%s: %d/%d bottles good\n",
//	    progress.HumanUID, progress.QtyGood, progress.QtyPlanned)
type GetOrderProgressQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderProgressQuery creates a query for one order's progress.
func NewGetOrderProgressQuery(orderID kernel.UUID) (GetOrderProgressQuery, error) {
	query := GetOrderProgressQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderProgressQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

// OrderID returns the order being inspected.
func (q GetOrderProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderProgressQuery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.orderID = id
	return nil
}

// BatchProgressResponse is one batch's slice of the order progress view.
type BatchProgressResponse struct {
	BatchID    kernel.UUID
	HumanUID   string
	Status     string
	QtyPlanned int
	QtyGood    int
	QtyScrap   int
	StepsDone  int
	StepsTotal int
}

// PaymentCaptureResponse is one recorded capture in the progress view,
// oldest first.
type PaymentCaptureResponse struct {
	CaptureID   string
	PaymentType string
	AmountCents int64
	CapturedAt  time.Time
}

// GetOrderProgressQueryResponse is the order progress read model. Bottle
// totals and step progress are aggregated over all non-deleted batches.
type GetOrderProgressQueryResponse struct {
	OrderID            kernel.UUID
	HumanUID           string
	Status             string
	DepositStatus      string
	QtyPlanned         int
	QtyGood            int
	QtyScrap           int
	StepProgress       float64
	AllBatchesComplete bool
	AmountPaidCents    int64
	Batches            []BatchProgressResponse
	Payments           []PaymentCaptureResponse
}
