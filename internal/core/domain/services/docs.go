// Package services provides domain services that work across multiple
// aggregates of one order.
//
// The package includes:
//   - QuantityLedger: aggregates planned/good/scrap bottle counts across
//     an order's batches and answers completion questions the Order
//     aggregate cannot answer alone
//
// Domain services hold no state of their own; they operate on aggregates
// loaded by the caller.
package services
