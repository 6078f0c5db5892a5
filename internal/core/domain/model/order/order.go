package order

import (
	"errors"
	"strings"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"
	"bottleworks/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrHumanUIDIsRequired is returned when creating an order without a
	// display code.
	ErrHumanUIDIsRequired = errs.NewValueIsRequiredError("humanUID")

	// ErrQuoteLinkTokenIsRequired is returned when creating an order
	// without a quote approval token.
	ErrQuoteLinkTokenIsRequired = errs.NewValueIsRequiredError("quoteLinkToken")
)

// Order is the aggregate root customers and staff observe. It owns the
// lifecycle status, quote data, and deposit state of one wholesale order.
//
// Order invariants:
//   - Status transitions are applied only through ApplyTransition, which
//     enforces the remote validator's verdict (blockers reject, override
//     demands a justification note)
//   - DepositStatus reaches paid only through RecordDepositCapture, i.e.
//     only after a recorded payment transaction
//   - The version field supports optimistic concurrency: a stale aggregate
//     cannot overwrite a newer persisted state
//
// The struct uses private fields; construct via NewOrder and restore from
// persistence via RestoreOrder.
type Order struct {
	id             kernel.UUID
	humanUID       string
	quoteLinkToken string

	status          Status
	subtotal        kernel.Money
	depositRequired bool
	depositAmount   kernel.Money
	depositStatus   DepositStatus

	quoteExpiresAt *time.Time
	promisedDate   *time.Time
	etaDate        *time.Time

	// version is the optimistic concurrency token, incremented by the
	// repository on every successful conditional update.
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a fresh order in draft status with an unpaid deposit.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - humanUID: display code shown to staff and customers (non-empty)
//   - quoteLinkToken: capability token for unauthenticated quote approval
//   - subtotal: quoted subtotal amount
//   - depositRequired: whether a deposit gates production
//   - depositAmount: the deposit to collect when required
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "BW-1042", token, subtotal, true, deposit)
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.UUID,
	humanUID string,
	quoteLinkToken string,
	subtotal kernel.Money,
	depositRequired bool,
	depositAmount kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        StatusDraft,
		depositStatus: DepositUnpaid,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setHumanUID(humanUID),
		o.setQuoteLinkToken(quoteLinkToken),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotal
	o.depositRequired = depositRequired
	o.depositAmount = depositAmount

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, preserving its
// lifecycle state, deposit progress, dates, and concurrency version.
func RestoreOrder(
	id kernel.UUID,
	humanUID string,
	quoteLinkToken string,
	status Status,
	subtotal kernel.Money,
	depositRequired bool,
	depositAmount kernel.Money,
	depositStatus DepositStatus,
	quoteExpiresAt *time.Time,
	promisedDate *time.Time,
	etaDate *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setHumanUID(humanUID),
		o.setQuoteLinkToken(quoteLinkToken),
		o.setStatus(status),
		o.setDepositStatus(depositStatus),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotal
	o.depositRequired = depositRequired
	o.depositAmount = depositAmount
	o.quoteExpiresAt = quoteExpiresAt
	o.promisedDate = promisedDate
	o.etaDate = etaDate

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// HumanUID returns the order's display code.
func (o *Order) HumanUID() string {
	return o.humanUID
}

// QuoteLinkToken returns the capability token for quote approval.
func (o *Order) QuoteLinkToken() string {
	return o.quoteLinkToken
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Subtotal returns the quoted subtotal amount.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DepositRequired reports whether a deposit gates production.
func (o *Order) DepositRequired() bool {
	return o.depositRequired
}

// DepositAmount returns the deposit to collect when required.
func (o *Order) DepositAmount() kernel.Money {
	return o.depositAmount
}

// DepositStatus returns the current deposit progress.
func (o *Order) DepositStatus() DepositStatus {
	return o.depositStatus
}

// QuoteExpiresAt returns when the quote lapses, nil if open-ended.
func (o *Order) QuoteExpiresAt() *time.Time {
	return o.quoteExpiresAt
}

// PromisedDate returns the date promised to the customer, if set.
func (o *Order) PromisedDate() *time.Time {
	return o.promisedDate
}

// ETADate returns the current production estimate, if set.
func (o *Order) ETADate() *time.Time {
	return o.etaDate
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int {
	return o.version
}

// ApplyTransition applies the remote validator's verdict for a requested
// status change.
//
// Rules, in order:
//  1. The verdict must be about the status this aggregate currently has;
//     a mismatch means the order changed since the validator looked, and
//     the caller must reload and retry (ConflictingUpdateError).
//  2. Any blockers reject the transition (BlockedTransitionError); the
//     order is left untouched.
//  3. When the verdict requires an override, the justification note must
//     be non-empty after trimming (OverrideRequiredError).
//  4. Otherwise the status is changed. Warnings do not reject; the caller
//     flags the transition for audit review.
//
// ApplyTransition mutates only in-memory state; persistence and audit are
// the command handler's responsibility so the validation and the write
// appear as one logical operation to callers.
func (o *Order) ApplyTransition(result ValidationResult, overrideNote string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := result.Validate(); err != nil {
		return err
	}

	if result.CurrentStatus() != o.status {
		return errs.NewConflictingUpdateError("order", o.id.String())
	}

	if !result.Valid() {
		return errs.NewBlockedTransitionError(
			o.id.String(), o.status.String(), result.NewStatus().String(), result.Blockers())
	}

	if result.RequiresOverride() && strings.TrimSpace(overrideNote) == "" {
		return errs.NewOverrideRequiredError(
			o.id.String(), o.status.String(), result.NewStatus().String(), result.Warnings())
	}

	o.status = result.NewStatus()
	return nil
}

// RecordDepositCapture updates the deposit status from the total amount
// captured so far. Called only from the payment capture path, which is
// what keeps "paid requires a recorded payment" true.
func (o *Order) RecordDepositCapture(totalCaptured kernel.Money) error {
	if err := o.Validate(); err != nil {
		return err
	}

	switch {
	case totalCaptured.IsZero():
		o.depositStatus = DepositUnpaid
	case totalCaptured.GreaterOrEqual(o.depositAmount) && !o.depositAmount.IsZero():
		o.depositStatus = DepositPaid
	default:
		o.depositStatus = DepositPartial
	}

	return nil
}

// ScheduleQuoteExpiry stamps when the outstanding quote lapses.
func (o *Order) ScheduleQuoteExpiry(expiresAt time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.quoteExpiresAt = &expiresAt
	return nil
}

// QuoteLapsed reports whether the order holds a sent quote whose expiry
// has passed. Used by the quote expiry sweep.
func (o *Order) QuoteLapsed(now time.Time) bool {
	return o.status == StatusQuoteSent && o.quoteExpiresAt != nil && o.quoteExpiresAt.Before(now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setHumanUID(humanUID string) error {
	if strings.TrimSpace(humanUID) == "" {
		return ErrHumanUIDIsRequired
	}
	o.humanUID = humanUID
	return nil
}

func (o *Order) setQuoteLinkToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrQuoteLinkTokenIsRequired
	}
	o.quoteLinkToken = token
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDepositStatus(status DepositStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.depositStatus = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version")
	}
	o.version = version
	return nil
}
