package commands

import (
	"context"

	"bottleworks/internal/core/domain/model/batch"
)

// MergeBatchesCommandHandler handles folding batches together. The target
// absorbs the sources' planned quantities and the sources are deleted in
// the same transaction, conserving the order's planned total.
type MergeBatchesCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewMergeBatchesCommandHandler creates a handler for batch merges.
func NewMergeBatchesCommandHandler(uowFactory BatchUoWFactory) MergeBatchesCommandHandler {
	return MergeBatchesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the merge command.
func (h *MergeBatchesCommandHandler) Handle(ctx context.Context, cmd MergeBatchesCommand) error {
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

	target, err := batchRepo.Get(ctx, cmd.TargetID())
	if err != nil {
		return err
	}

	sources := make([]*batch.Batch, 0, len(cmd.SourceIDs()))
	for _, id := range cmd.SourceIDs() {
		source, getErr := batchRepo.Get(ctx, id)
		if getErr != nil {
			return getErr
		}
		sources = append(sources, source)
	}

	if err = target.Absorb(sources); err != nil {
		return err
	}

	for _, source := range sources {
		if err = batchRepo.Delete(ctx, source.ID()); err != nil {
			return err
		}
	}

	if err = batchRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
