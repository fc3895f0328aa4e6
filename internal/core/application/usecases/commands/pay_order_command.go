package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
)

// PayOrderCommand represents a request to record payment for an order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay for the given order.
func NewPayOrderCommand(orderID kernel.UUID) (PayOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PayOrderCommand{}, err
	}

	return PayOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
