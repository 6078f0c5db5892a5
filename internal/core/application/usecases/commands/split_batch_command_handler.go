package commands

import (
	"context"
)

// SplitBatchCommandHandler handles dividing a batch. The source batch is
// deleted and its replacements inserted in the same transaction, so the
// planned quantity across the order is conserved whatever happens.
type SplitBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewSplitBatchCommandHandler creates a handler for batch splits.
func NewSplitBatchCommandHandler(uowFactory BatchUoWFactory) SplitBatchCommandHandler {
	return SplitBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the split command.
// Loads the source, derives the child batches through the aggregate, then
// deletes the source and inserts the children atomically.
func (h *SplitBatchCommandHandler) Handle(ctx context.Context, cmd SplitBatchCommand) error {
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

	source, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	children, err := source.Split(cmd.Quantities())
	if err != nil {
		return err
	}

	if err = batchRepo.Delete(ctx, source.ID()); err != nil {
		return err
	}

	for _, child := range children {
		if err = batchRepo.Add(ctx, child); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
