package ports

import (
	"context"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
)

// OrderNotification describes a milestone reached by an order. The core
// decides which transitions are notifiable; the notifier only delivers.
type OrderNotification struct {
	OrderID  kernel.UUID
	HumanUID string
	Status   order.Status
}

// Notifier delivers customer-facing milestone notifications. Delivery is
// best effort: a failed notification must not roll back the transition
// that triggered it.
type Notifier interface {
	// NotifyStatusReached announces that an order has reached a
	// notifiable milestone.
	NotifyStatusReached(ctx context.Context, notification OrderNotification) error
}
