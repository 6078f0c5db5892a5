package order

import (
	"fmt"

	"bottleworks/internal/pkg/errs"
)

// DepositStatus tracks how much of a required deposit has been captured.
type DepositStatus int

const (
	// DepositUnknown represents an invalid or undefined deposit status.
	DepositUnknown DepositStatus = iota

	// DepositUnpaid indicates no deposit payment has been captured.
	DepositUnpaid

	// DepositPartial indicates some but not all of the deposit is captured.
	DepositPartial

	// DepositPaid indicates the full deposit amount has been captured.
	// Only reachable through a recorded payment capture.
	DepositPaid
)

func getDepositStatusStrings() map[DepositStatus]string {
	return map[DepositStatus]string{
		DepositUnknown: "unknown",
		DepositUnpaid:  "unpaid",
		DepositPartial: "partial",
		DepositPaid:    "paid",
	}
}

// Validate checks that the DepositStatus is one of the valid values.
func (d DepositStatus) Validate() error {
	if d < DepositUnpaid || d > DepositPaid {
		return errs.NewValueIsInvalidErrorWithCause("depositStatus",
			fmt.Errorf("%d is not a valid deposit status", d))
	}
	return nil
}

// String returns the display name of the deposit status.
func (d DepositStatus) String() string {
	if str, ok := getDepositStatusStrings()[d]; ok {
		return str
	}
	return "unknown"
}
