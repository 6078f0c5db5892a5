package batch

import (
	"fmt"

	"bottleworks/internal/pkg/errs"
)

// StepStatus represents the state of a single workflow step.
//
// State transitions: pending -> wip -> done. No back-transitions, no
// skipping: a step must be started before it can be completed.
type StepStatus int

const (
	// StepStatusUnknown represents an invalid or undefined step status.
	StepStatusUnknown StepStatus = iota

	// StepPending indicates the step has not been started.
	StepPending

	// StepWIP indicates an operator is working the step.
	StepWIP

	// StepDone indicates the step is finished.
	StepDone
)

func getStepStatusStrings() map[StepStatus]string {
	return map[StepStatus]string{
		StepStatusUnknown: "unknown",
		StepPending:       "pending",
		StepWIP:           "wip",
		StepDone:          "done",
	}
}

// Validate checks that the StepStatus is one of the valid values.
func (s StepStatus) Validate() error {
	if s < StepPending || s > StepDone {
		return errs.NewValueIsInvalidErrorWithCause("stepStatus",
			fmt.Errorf("%d is not a valid step status", s))
	}
	return nil
}

// String returns the display name of the step status.
func (s StepStatus) String() string {
	if str, ok := getStepStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

