// Package kernel provides shared value objects used across the domain
// model: identifiers and money amounts.
//
// The package includes:
//   - UUID: an immutable identifier wrapping github.com/google/uuid
//   - Money: a non-negative amount in cents
//
// Kernel types are value objects: immutable, comparable, and validated at
// construction. They carry no behavior specific to any one aggregate.
package kernel
