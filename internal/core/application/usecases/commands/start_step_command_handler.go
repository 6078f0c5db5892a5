package commands

import (
	"context"
	"time"
)

// StartStepCommandHandler handles starting a workflow step. The aggregate
// enforces the hold flag and strict step ordering; the handler only
// resolves the step by stage name and persists the result.
type StartStepCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewStartStepCommandHandler creates a handler for starting workflow steps.
func NewStartStepCommandHandler(uowFactory BatchUoWFactory) StartStepCommandHandler {
	return StartStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-step command.
func (h *StartStepCommandHandler) Handle(ctx context.Context, cmd StartStepCommand) error {
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

	step, err := batchEntity.StepFor(cmd.Step())
	if err != nil {
		return err
	}

	if err = batchEntity.StartStep(step.ID(), cmd.OperatorID(), time.Now().UTC()); err != nil {
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
