package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
// Carries the pre-validated item lines the customer selected.
//
// Example:
//
//	item, _ := order.NewItem(order.ProductCheese, order.SizeMedium, 2)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid and at least one constructed item is
// supplied. Returns an error if any validation fails; nothing is partially
// accepted.
func NewCreateOrderCommand(orderID kernel.UUID, items []order.Item) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the item lines of the order being placed.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
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
