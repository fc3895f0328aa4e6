package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPayOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewPayOrderCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("should fail with zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := commands.NewPayOrderCommand(id)

		require.Error(t, err)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.PayOrderCommand
		require.Error(t, cmd.Validate())
	})
}

func TestPayOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrderInStatus(t, order.Created)
	cmd, _ := commands.NewPayOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_Conflict(t *testing.T) {
	invalidSources := []order.Status{
		order.Paid,
		order.Progress,
		order.Cancelled,
		order.Dispatched,
		order.Delivered,
	}

	for _, status := range invalidSources {
		t.Run("from "+status.String(), func(t *testing.T) {
			ctx := t.Context()
			aggregate := testOrderInStatus(t, status)
			cmd, _ := commands.NewPayOrderCommand(aggregate.ID())

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewPayOrderCommandHandler(factory)
			err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, status, aggregate.Status())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestPayOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewPayOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
