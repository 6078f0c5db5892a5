package commands

import (
	"context"
	"errors"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/payment"
	"bottleworks/internal/core/ports"
	"bottleworks/internal/pkg/errs"
)

// CapturePaymentCommandHandler handles payment collection. It captures the
// funds with the external provider, records the capture, and rolls the
// order's deposit status forward from the captured total.
//
// Recording is idempotent by capture ID: a gateway callback replayed after
// a crash finds its capture already stored and changes nothing.
type CapturePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	auditSink  ports.AuditSink
}

// NewCapturePaymentCommandHandler creates a handler for payment capture.
func NewCapturePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	auditSink ports.AuditSink,
) CapturePaymentCommandHandler {
	return CapturePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		auditSink:  auditSink,
	}
}

// Handle processes the capture command.
// The gateway call happens before the transaction opens; a provider
// outage therefore never holds a database transaction open.
func (h CapturePaymentCommandHandler) Handle(ctx context.Context, cmd CapturePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	capture, err := h.gateway.Capture(ctx, cmd.OrderID(), cmd.PaymentType(), cmd.Amount())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	orderRepo := uow.OrderRepository()

	_, err = paymentRepo.GetByCaptureID(ctx, capture.CaptureID)
	if err == nil {
		// Already recorded, nothing more to do.
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	paymentEntity, err := payment.NewPayment(
		kernel.NewUUID(),
		cmd.OrderID(),
		capture.CaptureID,
		cmd.PaymentType(),
		capture.Amount,
		capture.CapturedAt,
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, paymentEntity); err != nil {
		return err
	}

	totalCaptured, err := paymentRepo.SumForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldDeposit := orderEntity.DepositStatus()

	if err = orderEntity.RecordDepositCapture(totalCaptured); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.auditSink.Record(ctx, ports.AuditEntry{
		EntityName: "order",
		EntityID:   orderEntity.ID(),
		Action:     "payment_captured",
		OldValue:   oldDeposit.String(),
		NewValue:   orderEntity.DepositStatus().String(),
		ActorID:    cmd.ActorID(),
		Note:       capture.CaptureID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
