package commands

import (
	"errors"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var ErrResumeBatchCommandIsNotConstructed = errors.New(
	"ResumeBatchCommand must be created via NewResumeBatchCommand constructor",
)

// ResumeBatchCommand represents staff clearing a batch's hold flag so work
// can continue.
type ResumeBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	actorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeBatchCommand creates a command to resume a held batch.
func NewResumeBatchCommand(batchID kernel.UUID, actorID *kernel.UUID) (ResumeBatchCommand, error) {
	command := ResumeBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(batchID),
		command.setActorID(actorID),
	); err != nil {
		return ResumeBatchCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeBatchCommand) Validate() error {
	return c.guard.Validate(ErrResumeBatchCommandIsNotConstructed)
}

// BatchID returns the batch to resume.
func (c ResumeBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ActorID returns the staff member resuming the batch, nil when unknown.
func (c ResumeBatchCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *ResumeBatchCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *ResumeBatchCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
