package commands

import (
	"errors"
	"strings"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrBatchHumanUIDIsRequired = errors.New("batch humanUID is required")
	ErrQtyPlannedIsInvalid     = errors.New("qtyPlanned must be greater than 0")
	ErrPriorityIndexIsInvalid  = errors.New("priorityIndex must not be negative")
)

// CreateBatchCommand represents a request to queue a production batch for
// an order. Automatically mints the batch ID and the traveler scan code.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID       kernel.UUID
	orderID       kernel.UUID
	uid           string
	humanUID      string
	qtyPlanned    int
	priorityIndex int

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to queue a new batch.
func NewCreateBatchCommand(
	orderID kernel.UUID,
	humanUID string,
	qtyPlanned int,
	priorityIndex int,
) (CreateBatchCommand, error) {
	command := CreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setHumanUID(humanUID),
		command.setQtyPlanned(qtyPlanned),
		command.setPriorityIndex(priorityIndex),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	command.uid = batch.NewScanCode()

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the generated batch ID.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// OrderID returns the owning order.
func (c CreateBatchCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UID returns the generated traveler scan code.
func (c CreateBatchCommand) UID() string {
	return c.uid
}

// HumanUID returns the batch display code.
func (c CreateBatchCommand) HumanUID() string {
	return c.humanUID
}

// QtyPlanned returns the planned bottle count.
func (c CreateBatchCommand) QtyPlanned() int {
	return c.qtyPlanned
}

// PriorityIndex returns the production queue position.
func (c CreateBatchCommand) PriorityIndex() int {
	return c.priorityIndex
}

func (c *CreateBatchCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *CreateBatchCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateBatchCommand) setHumanUID(humanUID string) error {
	if strings.TrimSpace(humanUID) == "" {
		return ErrBatchHumanUIDIsRequired
	}

	c.humanUID = humanUID
	return nil
}

func (c *CreateBatchCommand) setQtyPlanned(qty int) error {
	if qty <= 0 {
		return ErrQtyPlannedIsInvalid
	}

	c.qtyPlanned = qty
	return nil
}

func (c *CreateBatchCommand) setPriorityIndex(priorityIndex int) error {
	if priorityIndex < 0 {
		return ErrPriorityIndexIsInvalid
	}

	c.priorityIndex = priorityIndex
	return nil
}
