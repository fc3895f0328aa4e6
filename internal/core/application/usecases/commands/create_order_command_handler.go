package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in "created" status with the requested item lines.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	item, _ := order.NewItem(order.ProductCheese, order.SizeMedium, 2)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), []order.Item{item})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the aggregate in "created" status and persists it within a
// transaction; on any error the transaction is rolled back.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
