// Package notify implements the Notifier port. The current transport is
// the structured log: milestone notifications are emitted as log events
// that the office tails. Swapping in an email or messenger transport only
// touches this package.
package notify

import (
	"context"
	"log/slog"

	"bottleworks/internal/core/ports"
)

// SlogNotifier emits milestone notifications as structured log events.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// NotifyStatusReached reports that an order reached a notifiable milestone.
func (n *SlogNotifier) NotifyStatusReached(ctx context.Context, notification ports.OrderNotification) error {
	n.logger.InfoContext(ctx, "order milestone reached",
		"order_id", notification.OrderID.String(),
		"human_uid", notification.HumanUID,
		"status", notification.Status.String(),
	)
	return nil
}
