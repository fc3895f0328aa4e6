// Package http implements the inbound HTTP adapter for the orders service.
// It translates the generated ServerInterface calls into commands and
// queries, and maps domain errors onto the HTTP contract.
package http

import (
	"context"
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Read-side contracts consumed by the server, satisfied by the handlers in
// the queries package.
type (
	// OrdersQueryHandler serves the order list read model.
	OrdersQueryHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error)
	}

	// OrderQueryHandler serves the single order read model.
	OrderQueryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler
	payOrderHandler         commands.PayOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	deleteOrderHandler      commands.DeleteOrderCommandHandler

	// Query handlers
	getOrdersHandler OrdersQueryHandler
	getOrderHandler  OrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrdersHandler OrdersQueryHandler,
	getOrderHandler OrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderItemsHandler: updateOrderItemsHandler,
		payOrderHandler:         payOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		deleteOrderHandler:      deleteOrderHandler,
		getOrdersHandler:        getOrdersHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// GetOrders handles GET /orders - retrieves orders, oldest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	query, err := queries.NewGetOrdersQuery(params.Cancelled, params.Limit)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toServerOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request servers.CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Detail: "invalid request body",
		})
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /orders/{order_id} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrder handles PUT /orders/{order_id} - replaces the order items.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	var request servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Detail: "invalid request body",
		})
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(orderID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// DeleteOrder handles DELETE /orders/{order_id} - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /orders/{order_id}/pay - marks an order as paid.
func (s *Server) PayOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// CancelOrder handles POST /orders/{order_id}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// respondWithOrder reads the order back and writes it with the given status code.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(code, toServerOrder(result))
}

// toDomainItems converts request lines into domain items.
// Quantity defaults when the request omits it.
func toDomainItems(requestItems []servers.OrderItemRequest) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requestItems))
	for _, requestItem := range requestItems {
		product, err := order.ProductFromString(string(requestItem.Product))
		if err != nil {
			return nil, err
		}

		size, err := order.SizeFromString(string(requestItem.Size))
		if err != nil {
			return nil, err
		}

		quantity := order.DefaultQuantity
		if requestItem.Quantity != nil {
			quantity = *requestItem.Quantity
		}

		item, err := order.NewItem(product, size, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// toServerOrder converts a read model into its wire representation.
func toServerOrder(resp queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.OrderItem{
			Id:       item.ID.Bytes(),
			Product:  servers.Product(item.Product),
			Quantity: item.Quantity,
			Size:     servers.Size(item.Size),
		}
	}

	return servers.Order{
		Id:      resp.ID.Bytes(),
		Created: resp.Created,
		Items:   items,
		Status:  servers.OrderStatus(resp.Status),
	}
}

// respondError maps application errors onto the HTTP contract.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Detail: err.Error()})
	case isValidationError(err):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{Detail: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Detail: "internal server error"})
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrInvalidTransition)
}
