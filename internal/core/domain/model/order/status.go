package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	created ──┬──> paid ──> progress ──> dispatched ──> delivered
//	          │      │
//	          └──────┴──> cancelled
//
// cancelled and delivered are terminal states with no outbound transitions.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Items can still be replaced and the order can be paid, cancelled, or deleted.
	Created

	// Paid indicates that payment has been recorded for the order.
	// The order is now waiting for the kitchen to start cooking.
	Paid

	// Progress indicates the kitchen is preparing the order.
	Progress

	// Cancelled indicates the order was cancelled before preparation started.
	// This is a terminal state.
	Cancelled

	// Dispatched indicates the order has left the kitchen and is on its way.
	Dispatched

	// Delivered indicates the order reached the customer.
	// This is a terminal state.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "created",
		Paid:       "paid",
		Progress:   "progress",
		Cancelled:  "cancelled",
		Dispatched: "dispatched",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "created",
		Paid:       "paid",
		Progress:   "progress",
		Cancelled:  "cancelled",
		Dispatched: "dispatched",
		Delivered:  "delivered",
	}
}

// StatusFromString parses a status from its wire representation.
// Returns an error if the string does not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outbound transitions.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Delivered
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - created -> paid
//
// Returns an InvalidTransitionError for every other source status,
// including paid itself: recording payment twice is rejected, not a no-op.
func (s Status) Pay() (Status, error) {
	if s != Created {
		return Unknown, errs.NewInvalidTransitionError("pay", s.String())
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - created -> cancelled
//   - paid -> cancelled
//
// Once the kitchen has started the order it can no longer be cancelled.
// Cancelling an already cancelled order fails as well.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Paid {
		return Unknown, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// StartCooking transitions the status to Progress.
//
// Valid transitions:
//   - paid -> progress
//
// This event is raised by the kitchen collaborator, not by the public API.
func (s Status) StartCooking() (Status, error) {
	if s != Paid {
		return Unknown, errs.NewInvalidTransitionError("start cooking", s.String())
	}
	return Progress, nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - progress -> dispatched
//
// This event is raised by the dispatch collaborator, not by the public API.
func (s Status) Dispatch() (Status, error) {
	if s != Progress {
		return Unknown, errs.NewInvalidTransitionError("dispatch", s.String())
	}
	return Dispatched, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - dispatched -> delivered
//
// Delivered is a terminal state with no further transitions.
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return Unknown, errs.NewInvalidTransitionError("deliver", s.String())
	}
	return Delivered, nil
}

// ValidateUpdateItems checks whether the item list may still be replaced.
// Items are mutable only while the order is in created status.
func (s Status) ValidateUpdateItems() error {
	if s != Created {
		return errs.NewInvalidTransitionError("update items", s.String())
	}
	return nil
}

// ValidateDelete checks whether an order in this status may be physically removed.
// Deletion is allowed only from created and cancelled; orders that have been
// paid or handed to the kitchen must be kept.
func (s Status) ValidateDelete() error {
	if s != Created && s != Cancelled {
		return errs.NewInvalidTransitionError("delete", s.String())
	}
	return nil
}
