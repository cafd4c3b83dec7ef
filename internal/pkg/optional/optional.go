// Package optional provides a present/absent wrapper for values read from
// nullable storage columns and for the captured fields of cancelled orders.
// Unlike a bare pointer it cannot alias stored state, and MustGet gives the
// reconstruction layer a way to assert presence where absence would prove
// corrupted data.
package optional

import "ristorante/internal/pkg/errs"

// Optional holds either a value or nothing. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a possibly-nil pointer (the shape nullable columns scan
// into) to an Optional over the pointed-to value.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value, panicking if absent. Reserved for call
// sites where absence is an invariant violation, not an expected condition.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(errs.NewInvariantViolationError("optional", "value read from an absent optional"))
	}
	return o.value
}

// ToPtr returns a pointer to a copy of the held value, or nil when absent.
func (o Optional[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}
