// Package order provides domain entities and business logic for order
// management in the food-delivery system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, food lines and lifecycle data
//   - Status: a state machine that enforces valid order status transitions
//   - Line: one (food, quantity) item requested by the client
//
// Key business rules:
//   - Order status follows a defined workflow: Waiting -> Ready -> Accepted -> Delivered
//   - Any non-terminal order can be cancelled; Delivered and Cancelled are final
//   - Accepted orders always carry their acceptance time and deliveryman,
//     Delivered orders also their delivery time
//   - Transitions produce new immutable snapshots instead of mutating in place
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
