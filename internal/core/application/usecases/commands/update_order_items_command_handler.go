package commands

import (
	"context"
)

// UpdateOrderItemsCommandHandler handles full replacement of an order's items.
// Loads the aggregate, applies the replacement through the state machine, and
// persists the result in one transaction.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemsCommandHandler creates a handler for item replacement.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderItemsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item replacement command.
// Fails with a not-found error for unknown orders and with an invalid
// transition error when the order has left "created" status. The whole
// operation is rejected on any item violation; nothing is partially applied.
func (h *UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateItems(cmd.Items()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
