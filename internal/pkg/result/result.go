// Package result provides the discriminated success/failure container used as
// the return type of every repository operation that can fail for an expected
// reason (not found, constraint violation, storage I/O). Expected failures
// travel as short messages inside a Result; panics are reserved for invariant
// violations that prove corrupted persisted state.
//
// Call sites performing dependent lookups check IsSuccess and, on failure,
// propagate the inner message unchanged so the root cause survives arbitrarily
// deep call chains.
package result

import (
	"ristorante/internal/pkg/errs"
)

// Result holds either a value or an error message, never both.
type Result[T any] struct {
	value   T
	message string
	success bool
}

// Success returns a successful Result wrapping value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Failure returns a failed Result carrying message. An empty message is a
// contract violation: a failure with no explanation would be unreportable.
func Failure[T any](message string) Result[T] {
	if message == "" {
		panic(errs.NewInvariantViolationError("result", "failure constructed with an empty message"))
	}
	return Result[T]{message: message}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// Value returns the wrapped value. Calling it on a failed Result is a
// programming error and panics.
func (r Result[T]) Value() T {
	if !r.success {
		panic(errs.NewInvariantViolationError("result", "value read from a failed result: "+r.message))
	}
	return r.value
}

// ErrorMessage returns the failure message. Calling it on a successful
// Result is a programming error and panics.
func (r Result[T]) ErrorMessage() string {
	if r.success {
		panic(errs.NewInvariantViolationError("result", "error message read from a successful result"))
	}
	return r.message
}

// PropagateFailure carries the failure message of r into a Result of a
// different value type. It is the verbatim-propagation step used at dependent
// lookup call sites; calling it on a successful Result panics.
func PropagateFailure[U, T any](r Result[T]) Result[U] {
	return Failure[U](r.ErrorMessage())
}
