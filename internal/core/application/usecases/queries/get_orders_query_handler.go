package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(nil, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order page queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders.
// Returns order read models sorted by creation time, oldest first,
// honoring the optional cancellation filter and page size.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			created,
			status
		FROM orders
	`
	args := make([]interface{}, 0, 2)

	if query.Cancelled() != nil {
		if *query.Cancelled() {
			sql += " WHERE status = ?"
		} else {
			sql += " WHERE status != ?"
		}
		args = append(args, order.Cancelled)
	}

	sql += " ORDER BY created"

	if query.Limit() != nil {
		sql += " LIMIT ?"
		args = append(args, *query.Limit())
	}

	orders := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrderResponse
		var status int
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.Created,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()
		orderResp.Items = make([]OrderItemResponse, 0)

		orders = append(orders, orderResp)
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := loadOrderItems(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if found, ok := items[orders[i].ID]; ok {
			orders[i].Items = found
		}
	}

	return orders, nil
}

// loadOrderItems fetches the order lines for the given orders,
// grouped by owning order.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[kernel.UUID][]OrderItemResponse, error) {
	items := make(map[kernel.UUID][]OrderItemResponse)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product,
			size,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var product, size int
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&product,
			&size,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		item.ID = itemID
		item.Product = order.Product(product).String()
		item.Size = order.Size(size).String()
		items[ownerID] = append(items[ownerID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
