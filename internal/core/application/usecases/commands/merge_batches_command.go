package commands

import (
	"errors"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var (
	ErrMergeBatchesCommandIsNotConstructed = errors.New(
		"MergeBatchesCommand must be created via NewMergeBatchesCommand constructor",
	)
	ErrMergeSourcesAreRequired = errors.New("merge requires at least one source batch")
)

// MergeBatchesCommand represents folding several untouched batches of one
// order into a single target batch.
type MergeBatchesCommand struct { //nolint:recvcheck //using for validation
	targetID  kernel.UUID
	sourceIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewMergeBatchesCommand creates a command to merge batches into a target.
func NewMergeBatchesCommand(targetID kernel.UUID, sourceIDs []kernel.UUID) (MergeBatchesCommand, error) {
	command := MergeBatchesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTargetID(targetID),
		command.setSourceIDs(sourceIDs),
	); err != nil {
		return MergeBatchesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MergeBatchesCommand) Validate() error {
	return c.guard.Validate(ErrMergeBatchesCommandIsNotConstructed)
}

// TargetID returns the surviving batch.
func (c MergeBatchesCommand) TargetID() kernel.UUID {
	return c.targetID
}

// SourceIDs returns the batches consumed by the merge.
func (c MergeBatchesCommand) SourceIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.sourceIDs...)
}

func (c *MergeBatchesCommand) setTargetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.targetID = id
	return nil
}

func (c *MergeBatchesCommand) setSourceIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrMergeSourcesAreRequired
	}

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.sourceIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
