// Package guard provides a small helper for distinguishing domain objects
// built through their constructors from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom
// validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as constructor-built. Embed it in a domain
// object and set it with NewConstructorGuard inside the constructor; the
// zero value fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that passes Validate.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructor-built values. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError != nil {
		return validationError
	}
	return ErrDefaultConstructorGuard
}
