// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that owns identity, items, and lifecycle
//   - Item: a product/size/quantity line owned by exactly one order
//   - Product, Size: fixed catalog enumerations
//   - Status: a state machine that enforces valid lifecycle transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and at least one item
//   - Status follows a defined workflow:
//     created -> paid -> progress -> dispatched -> delivered,
//     with cancellation possible from created and paid
//   - Items can only be replaced while the order is in created status
//   - Orders can only be deleted in created or cancelled status
//   - Transitions are not idempotent; repeating an event is rejected
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
