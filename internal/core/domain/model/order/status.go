package order

import (
	"fmt"

	"bottleworks/internal/pkg/errs"
)

// Status represents the lifecycle state of an order, from draft through
// quoting, deposit collection, production, packing, invoicing, and
// shipping.
//
// Unlike a classic state machine enum, Status does not know which
// transitions are legal. That rule table lives in the remote transition
// validator and is deliberately not re-derived here; Status only answers
// membership, display, and policy questions (terminal states, customer
// notification milestones).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status when an order is first captured.
	StatusDraft

	// StatusQuoteRequested indicates the customer asked for pricing.
	StatusQuoteRequested

	// StatusQuoteSent indicates a quote was sent and awaits approval.
	StatusQuoteSent

	// StatusQuoteApproved indicates the customer accepted the quote.
	StatusQuoteApproved

	// StatusQuoteExpired indicates the quote lapsed before approval.
	StatusQuoteExpired

	// StatusDepositPending indicates a deposit was requested but not paid.
	StatusDepositPending

	// StatusDepositPaid indicates the required deposit has been captured.
	StatusDepositPaid

	// StatusScheduled indicates production batches have been planned.
	StatusScheduled

	// StatusInProduction indicates at least one batch is being produced.
	StatusInProduction

	// StatusOnHold indicates production is paused for materials or quality.
	StatusOnHold

	// StatusInPacking indicates batches are being packed for shipment.
	StatusInPacking

	// StatusPacked indicates all batches are packed and ready to invoice.
	StatusPacked

	// StatusInvoiceSent indicates the final invoice was issued.
	StatusInvoiceSent

	// StatusInvoicePaid indicates the final invoice has been settled.
	StatusInvoicePaid

	// StatusReadyToShip indicates the order awaits carrier pickup.
	StatusReadyToShip

	// StatusLabelCreated indicates a carrier label has been generated.
	StatusLabelCreated

	// StatusShipped indicates the order left the facility. Terminal.
	StatusShipped

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled

	// StatusArchived indicates the order was archived for record keeping.
	StatusArchived
)

// getStatusStrings returns the wire/display names for every Status value,
// including StatusUnknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusDraft:          "draft",
		StatusQuoteRequested: "quote_requested",
		StatusQuoteSent:      "quote_sent",
		StatusQuoteApproved:  "quote_approved",
		StatusQuoteExpired:   "quote_expired",
		StatusDepositPending: "deposit_pending",
		StatusDepositPaid:    "deposit_paid",
		StatusScheduled:      "scheduled",
		StatusInProduction:   "in_production",
		StatusOnHold:         "on_hold",
		StatusInPacking:      "in_packing",
		StatusPacked:         "packed",
		StatusInvoiceSent:    "invoice_sent",
		StatusInvoicePaid:    "invoice_paid",
		StatusReadyToShip:    "ready_to_ship",
		StatusLabelCreated:   "label_created",
		StatusShipped:        "shipped",
		StatusCancelled:      "cancelled",
		StatusArchived:       "archived",
	}
}

// Validate checks that the Status is one of the 19 valid enum values.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusArchived {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the snake_case name of the status. Implements
// fmt.Stringer and matches the names persisted and shown to staff.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a snake_case status name as used on the API
// surface and in the database.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// IsTerminal reports whether no further transitions are expected.
// Shipped and cancelled are the terminal states of the lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusShipped || s == StatusCancelled
}

// IsNotifiableMilestone reports whether entering this status should
// notify the customer. The notification content and delivery are the
// notifier's concern; the core only decides whether.
func (s Status) IsNotifiableMilestone() bool {
	switch s {
	case StatusInProduction, StatusInPacking, StatusPacked, StatusShipped:
		return true
	default:
		return false
	}
}
