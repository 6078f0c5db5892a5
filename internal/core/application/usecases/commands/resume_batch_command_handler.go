package commands

import (
	"context"
	"time"

	"bottleworks/internal/core/ports"
)

// ResumeBatchCommandHandler handles clearing a batch's hold flag.
type ResumeBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	auditSink  ports.AuditSink
}

// NewResumeBatchCommandHandler creates a handler for resuming batches.
func NewResumeBatchCommandHandler(uowFactory BatchUoWFactory, auditSink ports.AuditSink) ResumeBatchCommandHandler {
	return ResumeBatchCommandHandler{
		uowFactory: uowFactory,
		auditSink:  auditSink,
	}
}

// Handle processes the resume command.
func (h ResumeBatchCommandHandler) Handle(ctx context.Context, cmd ResumeBatchCommand) error {
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

	if err = batchEntity.Resume(); err != nil {
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
		Action:     "resume",
		OldValue:   "hold",
		NewValue:   batchEntity.Status().String(),
		ActorID:    cmd.ActorID(),
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
