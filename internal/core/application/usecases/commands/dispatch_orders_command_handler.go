package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// DispatchOrdersCommandHandler stands in for the dispatch collaborator.
// On each run it first delivers orders already on the road, then hands cooked
// orders to delivery. Delivering before dispatching keeps an order from
// advancing two steps in a single run.
type DispatchOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDispatchOrdersCommandHandler creates a handler for dispatch operations.
func NewDispatchOrdersCommandHandler(uowFactory OrderUoWFactory) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command. All updates occur within a single
// transaction; an empty backlog is not an error.
func (h *DispatchOrdersCommandHandler) Handle(ctx context.Context, cmd DispatchOrdersCommand) error {
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

	dispatchedOrders, err := orderRepo.GetAllInStatus(ctx, order.Dispatched)
	if err != nil {
		return err
	}

	for _, aggregate := range dispatchedOrders {
		if err = aggregate.Deliver(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	cookedOrders, err := orderRepo.GetAllInStatus(ctx, order.Progress)
	if err != nil {
		return err
	}

	for _, aggregate := range cookedOrders {
		if err = aggregate.Dispatch(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
