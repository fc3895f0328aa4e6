package commands

import (
	"context"
)

// PayOrderCommandHandler records payment for an order.
// Payment is only accepted while the order is in "created" status; the state
// machine rejects everything else, including paying twice.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayOrderCommandHandler creates a handler for payment operations.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command within a transaction.
// The transition is evaluated against the most recently committed state; a
// concurrent commit on the same order causes this one to roll back.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	if err = aggregate.Pay(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
