// Package errs provides standardized error types for the bottleworks
// back-office application. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the
// application.
//
// The package includes generic error types for common scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value is outside allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// and the workflow error taxonomy surfaced to operators:
//   - BlockedTransitionError: an order status transition is blocked
//   - OverrideRequiredError: a transition needs a logged justification
//   - InvalidStepStateError: a workflow step is not in the required state
//   - QuantityMismatchError: split quantities do not conserve the plan
//   - QuantityOverrunError: recorded good+scrap exceed the plan
//   - ConflictingUpdateError: an optimistic concurrency conflict
//   - UpstreamUnavailableError: a persistence or validator call failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrTransitionBlocked)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is classification
//
// Blocker and warning strings carried by BlockedTransitionError and
// OverrideRequiredError come back from the transition validator verbatim
// and must be shown to operators unmodified.
package errs
