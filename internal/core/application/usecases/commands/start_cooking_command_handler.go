package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// StartCookingCommandHandler stands in for the kitchen collaborator.
// Retrieves all orders in "paid" status and moves each into "progress"
// through the state machine, all within a single transaction.
type StartCookingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartCookingCommandHandler creates a handler for kitchen pickup operations.
func NewStartCookingCommandHandler(uowFactory OrderUoWFactory) StartCookingCommandHandler {
	return StartCookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the kitchen pickup command.
// An empty paid backlog is not an error; the handler simply commits without
// changes.
func (h *StartCookingCommandHandler) Handle(ctx context.Context, cmd StartCookingCommand) error {
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

	paidOrders, err := orderRepo.GetAllInStatus(ctx, order.Paid)
	if err != nil {
		return err
	}

	for _, aggregate := range paidOrders {
		if err = aggregate.StartCooking(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
