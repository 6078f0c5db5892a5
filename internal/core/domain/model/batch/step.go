package batch

import (
	"fmt"

	"bottleworks/internal/pkg/errs"
)

// Step identifies one stage of the fixed production pipeline. The four
// steps always exist on every batch and are worked in declaration order:
// produce, bottle_cap, label, pack.
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	StepUnknown Step = iota

	// StepProduce is the liquid production stage.
	StepProduce

	// StepBottleCap is the bottling and capping stage.
	StepBottleCap

	// StepLabel is the labeling stage.
	StepLabel

	// StepPack is the final packing stage.
	StepPack
)

// OrderedSteps returns the fixed pipeline sequence. Every batch is created
// with exactly these steps, in this order.
func OrderedSteps() []Step {
	return []Step{StepProduce, StepBottleCap, StepLabel, StepPack}
}

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:   "unknown",
		StepProduce:   "produce",
		StepBottleCap: "bottle_cap",
		StepLabel:     "label",
		StepPack:      "pack",
	}
}

// Validate checks that the Step is one of the four pipeline stages.
func (s Step) Validate() error {
	if s < StepProduce || s > StepPack {
		return errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("%d is not a valid workflow step", s))
	}
	return nil
}

// String returns the snake_case name of the step. Implements fmt.Stringer.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StepFromString parses a snake_case step name as used on the API surface
// and in the database.
func StepFromString(s string) (Step, error) {
	for step, name := range getStepStrings() {
		if name == s && step != StepUnknown {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause("step",
		fmt.Errorf("%q is not a valid workflow step", s))
}
