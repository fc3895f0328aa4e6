// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific validation error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation, so structs embedding the
// guard cannot be used without going through their factory function.
//
// Example:
//
//	type PayOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewPayOrderCommand(orderID kernel.UUID) (PayOrderCommand, error) {
//	    return PayOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PayOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
