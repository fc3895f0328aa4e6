package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

// StartCookingCommand triggers the kitchen to pick up all paid orders.
// This batch operation moves every order in "paid" status into "progress".
//
// Example:
//
//	cmd := NewStartCookingCommand()
//	handler := NewStartCookingCommandHandler(uowFactory)
//
//	// Run periodically to simulate the kitchen picking up work
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Kitchen pickup failed: %v", err)
//	}
type StartCookingCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrStartCookingCommandIsNotConstructed = errors.New(
		"StartCookingCommand must be created via NewStartCookingCommand constructor",
	)
)

// NewStartCookingCommand creates a command to move paid orders into progress.
// This is a parameterless command that processes all paid orders.
func NewStartCookingCommand() StartCookingCommand {
	return StartCookingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *StartCookingCommand) Validate() error {
	return c.guard.Validate(ErrStartCookingCommandIsNotConstructed)
}
