package commands

import (
	"context"

	"bottleworks/internal/core/domain/model/batch"
)

// CreateBatchCommandHandler handles the business logic for queueing
// production batches. Verifies the owning order exists before creating the
// batch with its four pending workflow steps.
type CreateBatchCommandHandler struct {
	uowFactory OrderBatchUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for batch creation.
func NewCreateBatchCommandHandler(uowFactory OrderBatchUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch creation command.
// Loads the owning order to confirm it exists, then creates and persists
// the batch within a transaction.
func (h *CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	batchEntity, err := batch.NewBatch(
		cmd.BatchID(),
		cmd.OrderID(),
		cmd.UID(),
		cmd.HumanUID(),
		cmd.QtyPlanned(),
		cmd.PriorityIndex(),
	)
	if err != nil {
		return err
	}

	if err = uow.BatchRepository().Add(ctx, batchEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
