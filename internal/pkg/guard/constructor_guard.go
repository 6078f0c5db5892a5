// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries to ensure instances are only created
// through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. This ensures validation always fails
// with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its proper
// constructor or left as a zero value. Embedding a ConstructorGuard in a
// value object or entity lets Validate distinguish properly initialized
// instances from accidental zero values.
//
// Example usage:
//
//	type SplitPlan struct {
//	    quantities []int
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewSplitPlan(quantities []int) (SplitPlan, error) {
//	    return SplitPlan{quantities: quantities, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p SplitPlan) Validate() error {
//	    return p.guard.Validate(ErrSplitPlanIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns the supplied error for zero-value instances, or
// ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}

	if err == nil {
		return ErrDefaultConstructorGuard
	}

	return err
}
