package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

// DispatchOrdersCommand triggers the dispatch collaborator.
// This batch operation hands cooked orders to delivery and completes orders
// already on the road: "progress" orders become "dispatched" and
// "dispatched" orders become "delivered".
type DispatchOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrDispatchOrdersCommandIsNotConstructed = errors.New(
		"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
	)
)

// NewDispatchOrdersCommand creates a command to advance in-flight orders.
// This is a parameterless command that processes all orders on the road.
func NewDispatchOrdersCommand() DispatchOrdersCommand {
	return DispatchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrdersCommandIsNotConstructed)
}
