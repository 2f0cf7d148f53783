// Package guard provides ConstructorGuard, a marker embedded in value objects so that
// a zero value can be told apart from one built by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Embed it as an unexported field and set it from the constructor only:
//
//	type LocationTypes struct {
//	    names map[string]struct{}
//	    guard guard.ConstructorGuard
//	}
//
//	func NewLocationTypes(names ...string) (LocationTypes, error) {
//	    // validate names ...
//	    return LocationTypes{names: set, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t LocationTypes) Validate() error {
//	    return t.guard.Validate(ErrLocationTypesIsNotConstructed)
//	}
//
// A declared-but-unconstructed LocationTypes then fails Validate instead of
// silently rejecting every type.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
