// Package guard provides a defensive construction pattern for domain values.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only values built through their designated constructor pass
// validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is supplied for an unconstructed value.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether a value was created through its constructor.
// The zero value is "not constructed" and fails validation, which prevents
// accidental use of directly-initialized structs.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing value as
// properly constructed. Call it from the value's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the enclosing value was built through its
// constructor, and validationError (or ErrDefaultConstructorGuard when nil)
// otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
