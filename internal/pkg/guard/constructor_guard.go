// Package guard provides a defensive construction marker for value objects
// and commands. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable: only objects built through their constructor carry
// a constructed guard, so Validate can reject anything created by direct
// struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    tableNumber kernel.TableNumber
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(table kernel.TableNumber) (PlaceOrderCommand, error) {
//	    return PlaceOrderCommand{tableNumber: table, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call it from the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
