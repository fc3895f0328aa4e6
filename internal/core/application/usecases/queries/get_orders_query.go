package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// MinLimit is the smallest accepted page size.
	MinLimit = 1
	// MaxLimit is the largest accepted page size.
	MaxLimit = 10
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves a page of orders, oldest first.
// Both filters are optional: a nil cancelled returns orders in every
// status, true returns only cancelled orders and false excludes them.
// A nil limit returns the whole result set.
//
// Example:
//
//	cancelled := false
//	limit := 5
//	query, err := NewGetOrdersQuery(&cancelled, &limit)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	cancelled *bool
	limit     *int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve orders.
// Returns ErrValueIsOutOfRange when limit falls outside [MinLimit, MaxLimit].
func NewGetOrdersQuery(cancelled *bool, limit *int) (GetOrdersQuery, error) {
	if limit != nil && (*limit < MinLimit || *limit > MaxLimit) {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", *limit, MinLimit, MaxLimit)
	}

	return GetOrdersQuery{
		cancelled: cancelled,
		limit:     limit,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Cancelled returns the optional cancellation filter.
func (q GetOrdersQuery) Cancelled() *bool {
	return q.cancelled
}

// Limit returns the optional page size.
func (q GetOrdersQuery) Limit() *int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
