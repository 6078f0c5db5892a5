package batch

import (
	"fmt"

	"bottleworks/internal/pkg/errs"
)

// Status represents the lifecycle state of a production batch.
//
// State transitions: queued -> wip -> {complete | hold}; hold returns to
// wip on staff resume. Queued, wip, and complete are derived from step
// statuses; hold is set and cleared by staff action only.
type Status int

const (
	// StatusUnknown represents an invalid or undefined batch status.
	StatusUnknown Status = iota

	// StatusQueued indicates no step has been started yet.
	StatusQueued

	// StatusWIP indicates at least one step has started.
	StatusWIP

	// StatusHold indicates staff paused the batch for materials or
	// quality issues.
	StatusHold

	// StatusComplete indicates all four steps are done.
	StatusComplete
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusQueued:   "queued",
		StatusWIP:      "wip",
		StatusHold:     "hold",
		StatusComplete: "complete",
	}
}

// Validate checks that the Status is one of the valid values.
func (s Status) Validate() error {
	if s < StatusQueued || s > StatusComplete {
		return errs.NewValueIsInvalidErrorWithCause("batchStatus",
			fmt.Errorf("%d is not a valid batch status", s))
	}
	return nil
}

// String returns the display name of the batch status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
