package commands_test

import (
	"context"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify mocks for the unit of work plumbing used by all handler tests.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// Test fixtures.

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(order.ProductCheese, order.SizeMedium, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func testOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), testItems(t))
	require.NoError(t, err)

	switch status {
	case order.Created:
	case order.Paid:
		require.NoError(t, o.Pay())
	case order.Progress:
		require.NoError(t, o.Pay())
		require.NoError(t, o.StartCooking())
	case order.Cancelled:
		require.NoError(t, o.Cancel())
	case order.Dispatched:
		require.NoError(t, o.Pay())
		require.NoError(t, o.StartCooking())
		require.NoError(t, o.Dispatch())
	case order.Delivered:
		require.NoError(t, o.Pay())
		require.NoError(t, o.StartCooking())
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.Deliver())
	default:
		t.Fatalf("cannot build order in status %s", status)
	}

	return o
}
