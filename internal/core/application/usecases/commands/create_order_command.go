package commands

import (
	"errors"
	"strings"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrHumanUIDIsRequired = errors.New("humanUID is required")
)

// CreateOrderCommand represents a request to open a new wholesale order in
// draft status. Encapsulates the quote figures the order starts with.
//
// Example:
//
//	subtotal, _ := kernel.NewMoney(125000)
//	deposit, _ := kernel.NewMoney(50000)
//	cmd, err := NewCreateOrderCommand("BW-1042", subtotal, true, deposit)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Created order with ID: %s", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	humanUID        string
	quoteLinkToken  string
	subtotal        kernel.Money
	depositRequired bool
	depositAmount   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Automatically generates the order ID and the quote approval token.
func NewCreateOrderCommand(
	humanUID string,
	subtotal kernel.Money,
	depositRequired bool,
	depositAmount kernel.Money,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setHumanUID(humanUID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.quoteLinkToken = kernel.NewUUID().String()
	command.subtotal = subtotal
	command.depositRequired = depositRequired
	command.depositAmount = depositAmount

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// HumanUID returns the order's display code.
func (c CreateOrderCommand) HumanUID() string {
	return c.humanUID
}

// QuoteLinkToken returns the generated quote approval token.
func (c CreateOrderCommand) QuoteLinkToken() string {
	return c.quoteLinkToken
}

// Subtotal returns the quoted subtotal.
func (c CreateOrderCommand) Subtotal() kernel.Money {
	return c.subtotal
}

// DepositRequired reports whether a deposit gates production.
func (c CreateOrderCommand) DepositRequired() bool {
	return c.depositRequired
}

// DepositAmount returns the deposit to collect when required.
func (c CreateOrderCommand) DepositAmount() kernel.Money {
	return c.depositAmount
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setHumanUID(humanUID string) error {
	if strings.TrimSpace(humanUID) == "" {
		return ErrHumanUIDIsRequired
	}

	c.humanUID = humanUID
	return nil
}
