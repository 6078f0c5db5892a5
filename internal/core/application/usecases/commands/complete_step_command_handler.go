package commands

import (
	"context"
	"time"
)

// CompleteStepCommandHandler handles finishing a workflow step. Completing
// the last step flips the batch to complete and stamps its actual finish
// time inside the aggregate.
type CompleteStepCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCompleteStepCommandHandler creates a handler for completing workflow steps.
func NewCompleteStepCommandHandler(uowFactory BatchUoWFactory) CompleteStepCommandHandler {
	return CompleteStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-step command.
func (h *CompleteStepCommandHandler) Handle(ctx context.Context, cmd CompleteStepCommand) error {
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

	if err = batchEntity.CompleteStep(step.ID(), time.Now().UTC()); err != nil {
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
