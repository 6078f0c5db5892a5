package commands

import (
	"errors"
	"strings"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var ErrHoldBatchCommandIsNotConstructed = errors.New(
	"HoldBatchCommand must be created via NewHoldBatchCommand constructor",
)

// HoldBatchCommand represents staff pausing a batch, usually for materials
// or quality issues. The optional note lands in the audit trail.
type HoldBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	note    string
	actorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewHoldBatchCommand creates a command to pause a batch.
func NewHoldBatchCommand(batchID kernel.UUID, note string, actorID *kernel.UUID) (HoldBatchCommand, error) {
	command := HoldBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(batchID),
		command.setActorID(actorID),
	); err != nil {
		return HoldBatchCommand{}, err
	}

	command.note = strings.TrimSpace(note)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldBatchCommand) Validate() error {
	return c.guard.Validate(ErrHoldBatchCommandIsNotConstructed)
}

// BatchID returns the batch to pause.
func (c HoldBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Note returns the hold reason, empty when none was given.
func (c HoldBatchCommand) Note() string {
	return c.note
}

// ActorID returns the staff member pausing the batch, nil when unknown.
func (c HoldBatchCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *HoldBatchCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *HoldBatchCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
