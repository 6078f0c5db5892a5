// Package order provides the Order aggregate root for the wholesale
// back office. An order moves through quoting, deposit collection,
// production, packing, invoicing, and shipping.
//
// The package includes:
//   - Order: the aggregate root owning status, deposit state, and quote data
//   - Status: the 19-value lifecycle enum
//   - DepositStatus: unpaid/partial/paid deposit tracking
//   - ValidationResult: the transition validator's verdict for one request
//
// The legal-transition graph is intentionally NOT encoded here. Transition
// rules live in a remote validator (a stored procedure); this package only
// applies the validator's verdict: blockers reject, override demands a
// justification note, warnings allow but flag for audit review.
package order
