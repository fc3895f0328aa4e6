package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository is the external storage collaborator of the lifecycle core:
// every mutating operation must be durably persisted before it is considered
// complete, and concurrent operations on the same order serialize at this
// boundary.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored item list is fully replaced by the aggregate's current one.
	// Returns a not-found error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items. Returns a not-found error for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// ordered by creation time ascending. Used by the kitchen and dispatch
	// collaborators to find work.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete physically removes an order and its items.
	// Returns a not-found error if the order does not exist. Status
	// preconditions are the aggregate's concern, not the repository's.
	Delete(ctx context.Context, id kernel.UUID) error
}
