package commands

import (
	"errors"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var ErrStartStepCommandIsNotConstructed = errors.New(
	"StartStepCommand must be created via NewStartStepCommand constructor",
)

// StartStepCommand represents an operator starting one pipeline step of a
// batch, typically by scanning the batch traveler at a station.
type StartStepCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	step       batch.Step
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartStepCommand creates a command to start a workflow step.
func NewStartStepCommand(batchID kernel.UUID, step batch.Step, operatorID kernel.UUID) (StartStepCommand, error) {
	command := StartStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(batchID),
		command.setStep(step),
		command.setOperatorID(operatorID),
	); err != nil {
		return StartStepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartStepCommand) Validate() error {
	return c.guard.Validate(ErrStartStepCommandIsNotConstructed)
}

// BatchID returns the batch being worked.
func (c StartStepCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Step returns which pipeline stage to start.
func (c StartStepCommand) Step() batch.Step {
	return c.step
}

// OperatorID returns the operator starting the step.
func (c StartStepCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

func (c *StartStepCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *StartStepCommand) setStep(step batch.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	c.step = step
	return nil
}

func (c *StartStepCommand) setOperatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.operatorID = id
	return nil
}
