package commands

import (
	"errors"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var ErrCompleteStepCommandIsNotConstructed = errors.New(
	"CompleteStepCommand must be created via NewCompleteStepCommand constructor",
)

// CompleteStepCommand represents an operator finishing one pipeline step
// of a batch.
type CompleteStepCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	step    batch.Step

	guard guard.ConstructorGuard
}

// NewCompleteStepCommand creates a command to complete a workflow step.
func NewCompleteStepCommand(batchID kernel.UUID, step batch.Step) (CompleteStepCommand, error) {
	command := CompleteStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(batchID),
		command.setStep(step),
	); err != nil {
		return CompleteStepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStepCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStepCommandIsNotConstructed)
}

// BatchID returns the batch being worked.
func (c CompleteStepCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Step returns which pipeline stage to complete.
func (c CompleteStepCommand) Step() batch.Step {
	return c.step
}

func (c *CompleteStepCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *CompleteStepCommand) setStep(step batch.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	c.step = step
	return nil
}
