package kernel

import (
	"fmt"

	"bottleworks/internal/pkg/errs"
)

// Money is a non-negative amount of money in cents. Amounts in the
// back office (subtotals, deposits, captured payments) never carry
// fractional cents, so an integer representation avoids floating-point
// drift entirely.
//
// The zero value is a valid zero amount.
//
// Example:
//
//	deposit, err := kernel.NewMoney(125_00)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(deposit) // "125.00"
type Money struct {
	cents int64
}

// NewMoney creates a Money amount from cents. Negative amounts are
// rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// GreaterOrEqual reports whether m is at least other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

// String formats the amount as dollars with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
