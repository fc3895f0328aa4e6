package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items.
// Returns ErrObjectNotFound when no order exists with the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var orderResp OrderResponse
	var status int
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderResp.Created,
		&status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.ID = orderID
	orderResp.Status = order.Status(status).String()
	orderResp.Items = make([]OrderItemResponse, 0)

	items, err := loadOrderItems(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return OrderResponse{}, err
	}
	if found, ok := items[orderID]; ok {
		orderResp.Items = found
	}

	return orderResp, nil
}
