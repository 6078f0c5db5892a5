package commands

import (
	"context"
	"time"

	"bottleworks/internal/core/ports"
)

// HoldBatchCommandHandler handles pausing a batch. The hold flag is the
// only batch state that is not derived from the steps, so it is persisted
// directly and audited with the staff note.
type HoldBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	auditSink  ports.AuditSink
}

// NewHoldBatchCommandHandler creates a handler for pausing batches.
func NewHoldBatchCommandHandler(uowFactory BatchUoWFactory, auditSink ports.AuditSink) HoldBatchCommandHandler {
	return HoldBatchCommandHandler{
		uowFactory: uowFactory,
		auditSink:  auditSink,
	}
}

// Handle processes the hold command.
func (h HoldBatchCommandHandler) Handle(ctx context.Context, cmd HoldBatchCommand) error {
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

	batchRepo := uow.BatchRepository()

	batchEntity, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	oldStatus := batchEntity.Status()

	if err = batchEntity.Hold(); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, batchEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.auditSink.Record(ctx, ports.AuditEntry{
		EntityName: "batch",
		EntityID:   batchEntity.ID(),
		Action:     "hold",
		OldValue:   oldStatus.String(),
		NewValue:   batchEntity.Status().String(),
		ActorID:    cmd.ActorID(),
		Note:       cmd.Note(),
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
