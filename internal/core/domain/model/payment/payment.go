// Package payment provides the captured-payment record used to track
// deposits and invoice settlements. The core never talks to payment
// providers directly; it records gateway confirmations and enforces that
// the same capture is never recorded twice.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"
	"bottleworks/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Type identifies the payment provider that captured the funds.
type Type int

const (
	// TypeUnknown represents an invalid or undefined payment type.
	TypeUnknown Type = iota

	// TypePayPal is a PayPal capture.
	TypePayPal

	// TypeCashApp is a Cash App capture.
	TypeCashApp

	// TypeBTCPay is a BTCPay Server capture.
	TypeBTCPay
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "unknown",
		TypePayPal:  "paypal",
		TypeCashApp: "cashapp",
		TypeBTCPay:  "btcpay",
	}
}

// Validate checks that the Type is one of the supported providers.
func (t Type) Validate() error {
	if t < TypePayPal || t > TypeBTCPay {
		return errs.NewValueIsInvalidErrorWithCause("paymentType",
			fmt.Errorf("%d is not a valid payment type", t))
	}
	return nil
}

// String returns the provider name. Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TypeFromString parses a provider name as used on the API surface.
func TypeFromString(s string) (Type, error) {
	for typ, name := range getTypeStrings() {
		if name == s && typ != TypeUnknown {
			return typ, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("paymentType",
		fmt.Errorf("%q is not a valid payment type", s))
}

// Capture is the gateway's confirmation of a captured payment. It is a
// boundary value, not persisted as-is; the core turns it into a Payment
// record through the idempotent write path.
type Capture struct {
	CaptureID  string
	Amount     kernel.Money
	CapturedAt time.Time
}

// Payment is a recorded payment capture against one order. The capture ID
// is unique across all payments; recording the same capture twice is a
// no-op at the repository level.
type Payment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	captureID   string
	paymentType Type
	amount      kernel.Money
	capturedAt  time.Time

	guard guard.ConstructorGuard
}

// NewPayment records a gateway capture against an order.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	captureID string,
	paymentType Type,
	amount kernel.Money,
	capturedAt time.Time,
) (*Payment, error) {
	p := &Payment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setCaptureID(captureID),
		p.setType(paymentType),
	); err != nil {
		return nil, err
	}

	p.amount = amount
	p.capturedAt = capturedAt

	return p, nil
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	captureID string,
	paymentType Type,
	amount kernel.Money,
	capturedAt time.Time,
) (*Payment, error) {
	return NewPayment(id, orderID, captureID, paymentType, amount, capturedAt)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// CaptureID returns the gateway's capture identifier.
func (p *Payment) CaptureID() string {
	return p.captureID
}

// PaymentType returns the capturing provider.
func (p *Payment) PaymentType() Type {
	return p.paymentType
}

// Amount returns the captured amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// CapturedAt returns when the gateway captured the funds.
func (p *Payment) CapturedAt() time.Time {
	return p.capturedAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setCaptureID(captureID string) error {
	if strings.TrimSpace(captureID) == "" {
		return errs.NewValueIsRequiredError("captureID")
	}
	p.captureID = captureID
	return nil
}

func (p *Payment) setType(paymentType Type) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	p.paymentType = paymentType
	return nil
}
