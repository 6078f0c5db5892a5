package commands

import (
	"errors"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var (
	ErrRecordQuantitiesCommandIsNotConstructed = errors.New(
		"RecordQuantitiesCommand must be created via NewRecordQuantitiesCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantities must not be negative")
)

// RecordQuantitiesCommand represents recording the good and scrap bottle
// counts of a batch. Counts are absolute, not increments: the command
// overwrites whatever was recorded before.
type RecordQuantitiesCommand struct { //nolint:recvcheck //using for validation
	batchID  kernel.UUID
	qtyGood  int
	qtyScrap int

	guard guard.ConstructorGuard
}

// NewRecordQuantitiesCommand creates a command to record bottle counts.
func NewRecordQuantitiesCommand(batchID kernel.UUID, qtyGood, qtyScrap int) (RecordQuantitiesCommand, error) {
	command := RecordQuantitiesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(batchID),
		command.setQuantities(qtyGood, qtyScrap),
	); err != nil {
		return RecordQuantitiesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordQuantitiesCommand) Validate() error {
	return c.guard.Validate(ErrRecordQuantitiesCommandIsNotConstructed)
}

// BatchID returns the batch whose counts are recorded.
func (c RecordQuantitiesCommand) BatchID() kernel.UUID {
	return c.batchID
}

// QtyGood returns the good bottle count.
func (c RecordQuantitiesCommand) QtyGood() int {
	return c.qtyGood
}

// QtyScrap returns the scrap bottle count.
func (c RecordQuantitiesCommand) QtyScrap() int {
	return c.qtyScrap
}

func (c *RecordQuantitiesCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *RecordQuantitiesCommand) setQuantities(good, scrap int) error {
	if good < 0 || scrap < 0 {
		return ErrQuantityIsNegative
	}

	c.qtyGood = good
	c.qtyScrap = scrap
	return nil
}
