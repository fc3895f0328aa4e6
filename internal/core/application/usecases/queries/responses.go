// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

// OrderResponse represents order information in the read model.
// Status, products and sizes are rendered as their wire strings.
type OrderResponse struct {
	ID      kernel.UUID
	Created time.Time
	Status  string
	Items   []OrderItemResponse
}

// OrderItemResponse represents a single order line in the read model.
type OrderItemResponse struct {
	ID       kernel.UUID
	Product  string
	Size     string
	Quantity int
}
