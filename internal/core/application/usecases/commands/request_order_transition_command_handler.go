package commands

import (
	"context"
	"time"

	"bottleworks/internal/core/ports"
)

// RequestOrderTransitionCommandHandler orchestrates an order status change.
// It asks the remote transition validator for a verdict, lets the Order
// aggregate interpret it, and persists the new status under optimistic
// concurrency. Every applied transition lands in the audit trail, and
// notifiable milestones fan out to the customer notifier.
//
// A validator outage fails the command: transitions are never decided
// locally, not even with an override note.
type RequestOrderTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  ports.TransitionValidator
	auditSink  ports.AuditSink
	notifier   ports.Notifier
}

// NewRequestOrderTransitionCommandHandler creates a handler for order
// status transitions.
func NewRequestOrderTransitionCommandHandler(
	uowFactory OrderUoWFactory,
	validator ports.TransitionValidator,
	auditSink ports.AuditSink,
	notifier ports.Notifier,
) RequestOrderTransitionCommandHandler {
	return RequestOrderTransitionCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		auditSink:  auditSink,
		notifier:   notifier,
	}
}

// Handle processes the transition request.
// Loads the order, obtains the validator's verdict, applies it through the
// aggregate, and commits. The audit entry and the milestone notification
// happen after the commit; both are best effort and never undo the
// transition.
func (h RequestOrderTransitionCommandHandler) Handle(ctx context.Context, cmd RequestOrderTransitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldStatus := orderEntity.Status()

	verdict, err := h.validator.Validate(ctx, cmd.OrderID(), cmd.NewStatus())
	if err != nil {
		return err
	}

	if err = orderEntity.ApplyTransition(verdict, cmd.OverrideNote()); err != nil {
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
		Action:     "status_changed",
		OldValue:   oldStatus.String(),
		NewValue:   orderEntity.Status().String(),
		ActorID:    cmd.ActorID(),
		Note:       cmd.OverrideNote(),
		OccurredAt: time.Now().UTC(),
	})

	if orderEntity.Status().IsNotifiableMilestone() {
		// Notification failures are not surfaced: the transition is
		// already committed.
		_ = h.notifier.NotifyStatusReached(ctx, ports.OrderNotification{
			OrderID:  orderEntity.ID(),
			HumanUID: orderEntity.HumanUID(),
			Status:   orderEntity.Status(),
		})
	}

	return nil
}
