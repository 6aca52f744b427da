// Package guard marks domain objects that were built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into entities and value objects whose zero
// value is not a valid instance. Constructors set it with NewConstructorGuard
// and Validate methods check it before any other invariant.
//
// Example:
//
//	type Shipment struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (s *Shipment) Validate() error {
//	    return s.guard.Validate(ErrShipmentNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
