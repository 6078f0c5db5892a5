package commands

import (
	"errors"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var (
	ErrSplitBatchCommandIsNotConstructed = errors.New(
		"SplitBatchCommand must be created via NewSplitBatchCommand constructor",
	)
	ErrSplitQuantitiesAreRequired = errors.New("split requires at least two quantities")
)

// SplitBatchCommand represents dividing one untouched batch into several
// smaller ones. The quantities must sum exactly to the source's planned
// quantity; the aggregate enforces that.
type SplitBatchCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	quantities []int

	guard guard.ConstructorGuard
}

// NewSplitBatchCommand creates a command to split a batch.
func NewSplitBatchCommand(batchID kernel.UUID, quantities []int) (SplitBatchCommand, error) {
	command := SplitBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(batchID),
		command.setQuantities(quantities),
	); err != nil {
		return SplitBatchCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SplitBatchCommand) Validate() error {
	return c.guard.Validate(ErrSplitBatchCommandIsNotConstructed)
}

// BatchID returns the batch to split.
func (c SplitBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Quantities returns the planned quantity of each resulting batch.
func (c SplitBatchCommand) Quantities() []int {
	return append([]int(nil), c.quantities...)
}

func (c *SplitBatchCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *SplitBatchCommand) setQuantities(quantities []int) error {
	if len(quantities) < 2 {
		return ErrSplitQuantitiesAreRequired
	}

	c.quantities = append([]int(nil), quantities...)
	return nil
}
