package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer's purchase request in the system. It is the
// aggregate root that owns the order lifecycle from creation through payment
// and kitchen handling to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, immutable after creation
//   - Creation timestamp is set once and never changes
//   - Must always hold at least one item; an order with zero items cannot exist
//   - Status only changes through the transitions defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; every mutation goes
// through a validated method. The aggregate performs no I/O and holds no
// locks: callers serialize concurrent operations on the same order at the
// persistence boundary.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// created is the creation timestamp, immutable
	created time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items is the ordered list of purchased lines, never empty
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in created status with the current UTC time
// as its creation timestamp.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - items: at least one validated item
//
// Returns a validation error if the id is invalid, the item list is empty,
// or any item was not built through its constructor. Nothing is partially
// applied on failure.
func NewOrder(id kernel.UUID, items []Item) (*Order, error) {
	return RestoreOrder(id, time.Now().UTC(), Created, items)
}

// RestoreOrder reconstructs an Order from persisted state. All invariants of
// NewOrder apply; in addition the status must be a valid lifecycle state.
// This is used by repositories when loading aggregates and must not be used
// to sidestep transition rules.
func RestoreOrder(id kernel.UUID, created time.Time, status Status, items []Item) (*Order, error) {
	order := &Order{
		created:       created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Created returns the order's creation timestamp.
func (o *Order) Created() time.Time {
	return o.created
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's item list. The returned slice is a copy; callers
// cannot mutate the aggregate through it.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// UpdateItems fully replaces the item list. Old items are discarded, not
// merged. Allowed only while the order is in created status; the whole
// operation is rejected if any new item is invalid or the list is empty.
func (o *Order) UpdateItems(items []Item) error {
	if err := o.status.ValidateUpdateItems(); err != nil {
		return err
	}
	return o.setItems(items)
}

// Pay records payment for the order, moving it from created to paid.
// Fails with an InvalidTransitionError from any other status: payments are
// not idempotent, paying twice is rejected.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel cancels the order. Allowed from created and paid; once the kitchen
// has started (progress and beyond) cancellation fails. Cancelled is
// terminal, so cancelling an already cancelled order fails as well.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartCooking moves a paid order into progress. Raised by the kitchen
// collaborator rather than the public API.
func (o *Order) StartCooking() error {
	newStatus, err := o.status.StartCooking()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Dispatch moves an order in progress to dispatched. Raised by the dispatch
// collaborator rather than the public API.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver marks a dispatched order as delivered, the terminal success state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ValidateDelete checks whether the order may be physically removed.
// Only orders in created or cancelled status can be deleted.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and replaces the item list. The list must contain at
// least one item and every item must have been built via its constructor.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	copied := make([]Item, len(items))
	copy(copied, items)
	o.items = copied
	return nil
}
