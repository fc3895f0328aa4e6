package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
		"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
	)
)

// UpdateOrderItemsCommand represents a request to fully replace the item
// lines of an existing order. The previous items are discarded, not merged.
// Only orders still in "created" status accept the replacement; the state
// check happens in the handler against the aggregate's current state.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's items.
// Validates that the order ID is valid and at least one constructed item is
// supplied.
func NewUpdateOrderItemsCommand(orderID kernel.UUID, items []order.Item) (UpdateOrderItemsCommand, error) {
	updateCommand := UpdateOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setItems(items),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement item lines.
func (c UpdateOrderItemsCommand) Items() []order.Item {
	return c.items
}

func (c *UpdateOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemsCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
