package commands

import (
	"errors"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/payment"
	"bottleworks/internal/pkg/guard"
)

var (
	ErrCapturePaymentCommandIsNotConstructed = errors.New(
		"CapturePaymentCommand must be created via NewCapturePaymentCommand constructor",
	)
	ErrAmountIsRequired = errors.New("amount must be greater than 0")
)

// CapturePaymentCommand represents collecting a payment against an order
// through one of the configured providers.
type CapturePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	paymentType payment.Type
	amount      kernel.Money
	actorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCapturePaymentCommand creates a command to capture a payment.
func NewCapturePaymentCommand(
	orderID kernel.UUID,
	paymentType payment.Type,
	amount kernel.Money,
	actorID *kernel.UUID,
) (CapturePaymentCommand, error) {
	command := CapturePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPaymentType(paymentType),
		command.setAmount(amount),
		command.setActorID(actorID),
	); err != nil {
		return CapturePaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CapturePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCapturePaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c CapturePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentType returns the provider to capture with.
func (c CapturePaymentCommand) PaymentType() payment.Type {
	return c.paymentType
}

// Amount returns the amount to capture.
func (c CapturePaymentCommand) Amount() kernel.Money {
	return c.amount
}

// ActorID returns the staff member collecting the payment, nil for
// customer self-service payments.
func (c CapturePaymentCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *CapturePaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CapturePaymentCommand) setPaymentType(paymentType payment.Type) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	c.paymentType = paymentType
	return nil
}

func (c *CapturePaymentCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return ErrAmountIsRequired
	}

	c.amount = amount
	return nil
}

func (c *CapturePaymentCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
