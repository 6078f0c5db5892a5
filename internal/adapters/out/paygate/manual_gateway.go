// Package paygate implements the PaymentGateway port for manual capture:
// staff confirm the payment in the provider's own dashboard (PayPal,
// CashApp, BTCPay) and this adapter mints the capture reference recorded
// against the order. An API-integrated provider client would replace this
// adapter without touching the capture command.
package paygate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// ManualCaptureGateway confirms captures locally and logs them.
type ManualCaptureGateway struct {
	logger *slog.Logger
}

// NewManualCaptureGateway creates a gateway for manually confirmed payments.
func NewManualCaptureGateway(logger *slog.Logger) *ManualCaptureGateway {
	return &ManualCaptureGateway{logger: logger}
}

// Capture mints a capture reference for a payment confirmed out of band.
func (g *ManualCaptureGateway) Capture(
	ctx context.Context,
	orderID kernel.UUID,
	paymentType payment.Type,
	amount kernel.Money,
) (payment.Capture, error) {
	captureID := fmt.Sprintf("%s-%s",
		strings.ToUpper(paymentType.String()),
		strings.SplitN(uuid.NewString(), "-", 2)[0],
	)

	g.logger.InfoContext(ctx, "payment captured",
		"order_id", orderID.String(),
		"payment_type", paymentType.String(),
		"amount_cents", amount.Cents(),
		"capture_id", captureID,
	)

	return payment.Capture{
		CaptureID:  captureID,
		Amount:     amount,
		CapturedAt: time.Now().UTC(),
	}, nil
}
