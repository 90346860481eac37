// Package guard implements a defensive construction pattern for value
// objects and commands. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from one produced by its factory
// function, so Validate methods can reject objects that bypassed
// construction-time invariants.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing struct was produced by a
// factory function. The zero value reports "not constructed".
//
// Usage:
//
//	type ChangeOrderStatusCommand struct {
//	    orderID kernel.OrderID
//	    status  order.Status
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewChangeOrderStatusCommand(...) (ChangeOrderStatusCommand, error) {
//	    // validate inputs...
//	    return ChangeOrderStatusCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ChangeOrderStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from factory functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
