package ports

import (
	"context"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/payment"
)

// PaymentGateway captures funds with an external payment provider.
type PaymentGateway interface {
	// Capture captures amount against the order with the given provider
	// and returns the provider's confirmation. Returns
	// errs.UpstreamUnavailableError when the provider cannot be reached.
	Capture(ctx context.Context, orderID kernel.UUID, paymentType payment.Type, amount kernel.Money) (payment.Capture, error)
}
