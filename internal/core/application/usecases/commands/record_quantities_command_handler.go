package commands

import (
	"context"
)

// RecordQuantitiesCommandHandler handles recording bottle counts against a
// batch. The aggregate rejects counts whose sum exceeds the planned
// quantity.
type RecordQuantitiesCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewRecordQuantitiesCommandHandler creates a handler for recording
// bottle counts.
func NewRecordQuantitiesCommandHandler(uowFactory BatchUoWFactory) RecordQuantitiesCommandHandler {
	return RecordQuantitiesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record-quantities command.
func (h *RecordQuantitiesCommandHandler) Handle(ctx context.Context, cmd RecordQuantitiesCommand) error {
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

	if err = batchEntity.RecordQuantities(cmd.QtyGood(), cmd.QtyScrap()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, batchEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
