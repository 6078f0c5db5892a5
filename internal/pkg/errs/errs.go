package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrTransitionBlocked   = errors.New("transition blocked")
	ErrOverrideRequired    = errors.New("override required")
	ErrInvalidStepState    = errors.New("invalid step state")
	ErrQuantityMismatch    = errors.New("quantity mismatch")
	ErrQuantityOverrun     = errors.New("quantity overrun")
	ErrConflictingUpdate   = errors.New("conflicting update")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs and API responses.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value is outside allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// BlockedTransitionError indicates that the transition validator returned
// one or more blockers for a requested order status change. The blocker
// strings are operator-facing and must be surfaced verbatim.
type BlockedTransitionError struct {
	OrderID       string
	CurrentStatus string
	NewStatus     string
	Blockers      []string
}

// NewBlockedTransitionError creates a BlockedTransitionError carrying the
// validator's blocker strings.
func NewBlockedTransitionError(orderID, currentStatus, newStatus string, blockers []string) *BlockedTransitionError {
	return &BlockedTransitionError{
		OrderID:       orderID,
		CurrentStatus: currentStatus,
		NewStatus:     newStatus,
		Blockers:      blockers,
	}
}

func (e *BlockedTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s cannot move from %s to %s: %s",
		ErrTransitionBlocked, e.OrderID, e.CurrentStatus, e.NewStatus, strings.Join(e.Blockers, "; ")))
}

func (e *BlockedTransitionError) Unwrap() error {
	return ErrTransitionBlocked
}

// OverrideRequiredError indicates that a transition is permitted only with
// a non-empty justification note.
type OverrideRequiredError struct {
	OrderID       string
	CurrentStatus string
	NewStatus     string
	Warnings      []string
}

// NewOverrideRequiredError creates an OverrideRequiredError carrying the
// validator's warning strings.
func NewOverrideRequiredError(orderID, currentStatus, newStatus string, warnings []string) *OverrideRequiredError {
	return &OverrideRequiredError{
		OrderID:       orderID,
		CurrentStatus: currentStatus,
		NewStatus:     newStatus,
		Warnings:      warnings,
	}
}

func (e *OverrideRequiredError) Error() string {
	msg := fmt.Sprintf("%s: order %s move from %s to %s needs a justification note",
		ErrOverrideRequired, e.OrderID, e.CurrentStatus, e.NewStatus)
	if len(e.Warnings) > 0 {
		msg += ": " + strings.Join(e.Warnings, "; ")
	}
	return sanitize(msg)
}

func (e *OverrideRequiredError) Unwrap() error {
	return ErrOverrideRequired
}

// InvalidStepStateError indicates a start or complete was attempted on a
// workflow step that is not in the required prior state.
type InvalidStepStateError struct {
	Step     string
	Current  string
	Required string
}

// NewInvalidStepStateError creates an InvalidStepStateError.
func NewInvalidStepStateError(step, current, required string) *InvalidStepStateError {
	return &InvalidStepStateError{Step: step, Current: current, Required: required}
}

func (e *InvalidStepStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: step %s is %s, must be %s",
		ErrInvalidStepState, e.Step, e.Current, e.Required))
}

func (e *InvalidStepStateError) Unwrap() error {
	return ErrInvalidStepState
}

// QuantityMismatchError indicates split quantities do not sum to the
// source batch's planned quantity.
type QuantityMismatchError struct {
	Planned int
	Sum     int
}

// NewQuantityMismatchError creates a QuantityMismatchError.
func NewQuantityMismatchError(planned, sum int) *QuantityMismatchError {
	return &QuantityMismatchError{Planned: planned, Sum: sum}
}

func (e *QuantityMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: split quantities sum to %d, planned quantity is %d",
		ErrQuantityMismatch, e.Sum, e.Planned))
}

func (e *QuantityMismatchError) Unwrap() error {
	return ErrQuantityMismatch
}

// QuantityOverrunError indicates recorded good+scrap exceed the planned
// quantity of a batch.
type QuantityOverrunError struct {
	Planned int
	Good    int
	Scrap   int
}

// NewQuantityOverrunError creates a QuantityOverrunError.
func NewQuantityOverrunError(planned, good, scrap int) *QuantityOverrunError {
	return &QuantityOverrunError{Planned: planned, Good: good, Scrap: scrap}
}

func (e *QuantityOverrunError) Error() string {
	return sanitize(fmt.Sprintf("%s: good %d + scrap %d exceeds planned %d",
		ErrQuantityOverrun, e.Good, e.Scrap, e.Planned))
}

func (e *QuantityOverrunError) Unwrap() error {
	return ErrQuantityOverrun
}

// ConflictingUpdateError indicates an optimistic concurrency conflict: the
// record changed between read and conditional write. Callers retry with
// fresh state.
type ConflictingUpdateError struct {
	ParamName string
	ID        any
}

// NewConflictingUpdateError creates a ConflictingUpdateError.
func NewConflictingUpdateError(paramName string, id any) *ConflictingUpdateError {
	return &ConflictingUpdateError{ParamName: paramName, ID: id}
}

func (e *ConflictingUpdateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently, reload and retry",
		ErrConflictingUpdate, e.ParamName, e.ID))
}

func (e *ConflictingUpdateError) Unwrap() error {
	return ErrConflictingUpdate
}

// UpstreamUnavailableError indicates a persistence or validator call
// failed or timed out. Not retried locally; surfaced to the caller as-is.
type UpstreamUnavailableError struct {
	Upstream string
	Cause    error
}

// NewUpstreamUnavailableError creates an UpstreamUnavailableError wrapping
// the failing call's error.
func NewUpstreamUnavailableError(upstream string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Upstream: upstream, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUpstreamUnavailable, e.Upstream, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUpstreamUnavailable, e.Upstream))
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return ErrUpstreamUnavailable
}
