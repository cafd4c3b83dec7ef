package order

import (
	"fmt"
	"strings"

	"ristorante/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Waiting ──> Ready ──> Accepted ──> Delivered
//	   │          │           │
//	   └──────────┴───────────┴──────> Cancelled
//
// Delivered and Cancelled are final states with no further transitions.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Waiting is the initial status when an order is first placed.
	// Orders in this status are waiting to be prepared by the restaurant.
	Waiting

	// Ready indicates the restaurant finished preparing the order.
	// Orders in this status are waiting to be accepted by a deliveryman.
	Ready

	// Accepted indicates a deliveryman took charge of the order.
	Accepted

	// Delivered indicates the order reached the client.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Waiting:       "Waiting",
		Ready:         "Ready",
		Accepted:      "Accepted",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getStatusTokens returns a map of only valid Status values to the tokens
// stored in the orders.state column. The tokens are the historical schema
// vocabulary and must not change.
func getStatusTokens() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:   "attesa",
		Ready:     "pronto",
		Accepted:  "accettato",
		Delivered: "consegnato",
		Cancelled: "annullato",
	}
}

// ParseStatus converts a state token to a Status.
//
// Both the storage tokens ("attesa", "pronto", "accettato", "consegnato",
// "annullato") and their English names are accepted, case-insensitively and
// ignoring surrounding whitespace.
//
// An unrecognized token is an expected, recoverable condition, not data
// corruption: rows written by other tools may carry tokens this code does
// not know.
func ParseStatus(token string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "attesa", "waiting":
		return Waiting, nil
	case "pronto", "ready":
		return Ready, nil
	case "accettato", "accepted":
		return Accepted, nil
	case "consegnato", "delivered":
		return Delivered, nil
	case "annullato", "cancelled":
		return Cancelled, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%q is not a valid state token", token),
		)
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Waiting, Ready, Accepted, Delivered, Cancelled.
// UnknownStatus (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusTokens()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%d is not a valid state", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SQLToken returns the token persisted in the orders.state column.
//
// Calling SQLToken on an invalid Status is a contract breach between
// components, so it panics rather than returning an error.
func (s Status) SQLToken() string {
	token, ok := getStatusTokens()[s]
	if !ok {
		panic(errs.NewInvariantViolationError(
			"state",
			fmt.Sprintf("%d has no storage token", s),
		))
	}
	return token
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Waiting -> Ready (preparation finished)
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) MarkReady() (Status, error) {
	if s != Waiting {
		return 0, transitionError(s, Ready)
	}

	return Ready, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Ready -> Accepted (deliveryman takes charge)
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Accept() (Status, error) {
	if s != Ready {
		return 0, transitionError(s, Accepted)
	}

	return Accepted, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Accepted -> Delivered (order handed to client)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return 0, transitionError(s, Delivered)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Waiting -> Cancelled
//   - Ready -> Cancelled
//   - Accepted -> Cancelled
//
// Delivered and Cancelled orders cannot be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, transitionError(s, Cancelled)
	}

	return Cancelled, nil
}

func transitionError(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"state is invalid",
		fmt.Errorf("%s is not a valid state to become %s", from, to),
	)
}
