package ports

import (
	"context"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for captured payment
// records. Capture IDs are unique; the repository is the idempotency
// barrier for gateway callbacks delivered more than once.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByCaptureID retrieves a payment by the gateway's capture
	// identifier. Returns errs.ObjectNotFoundError when the capture has
	// not been recorded yet.
	GetByCaptureID(ctx context.Context, captureID string) (*payment.Payment, error)

	// GetAllByOrder retrieves all payments recorded against one order,
	// oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// SumForOrder returns the total amount captured against one order.
	SumForOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error)
}
