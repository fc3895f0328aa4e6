package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, product order.Product, size order.Size, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(product, size, quantity)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), []order.Item{
		mustItem(t, order.ProductCheese, order.SizeMedium, 2),
	})
	require.NoError(t, err)
	return o
}

// orderInStatus builds an order and walks it to the requested status through
// regular transitions.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newTestOrder(t)

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

	require.Equal(t, status, o.Status())
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with created status", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []order.Item{
			mustItem(t, order.ProductCheese, order.SizeMedium, 2),
			mustItem(t, order.ProductCoke, order.SizeSmall, 1),
		}

		before := time.Now().UTC()
		o, err := order.NewOrder(id, items)
		after := time.Now().UTC()

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Created, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.False(t, o.Created().Before(before))
		assert.False(t, o.Created().After(after))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, []order.Item{
			mustItem(t, order.ProductCheese, order.SizeMedium, 1),
		})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with a zero-value item", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), []order.Item{{}})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "Item must be created")
	})

	t.Run("should generate ids distinct across orders", func(t *testing.T) {
		first := newTestOrder(t)
		second := newTestOrder(t)

		assert.False(t, first.IsEqual(second))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		items := []order.Item{mustItem(t, order.ProductPepperoni, order.SizeLarge, 3)}

		o, err := order.RestoreOrder(id, created, order.Paid, items)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, created, o.Created())
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		items := []order.Item{mustItem(t, order.ProductPepperoni, order.SizeLarge, 3)}

		o, err := order.RestoreOrder(kernel.NewUUID(), time.Now().UTC(), order.Unknown, items)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order passes", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero-value order fails", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
	})
}

func TestOrder_UpdateItems(t *testing.T) {
	t.Run("should fully replace items in created status", func(t *testing.T) {
		o := newTestOrder(t)
		replacement := []order.Item{
			mustItem(t, order.ProductVeggie, order.SizeSmall, 1),
			mustItem(t, order.ProductSprite, order.SizeMedium, 4),
		}

		require.NoError(t, o.UpdateItems(replacement))

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, order.ProductVeggie, items[0].Product())
		assert.Equal(t, order.ProductSprite, items[1].Product())
	})

	t.Run("should reject empty replacement and keep old items", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.UpdateItems(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should reject update on paid order", func(t *testing.T) {
		o := orderInStatus(t, order.Paid)

		err := o.UpdateItems([]order.Item{
			mustItem(t, order.ProductVeggie, order.SizeSmall, 1),
		})

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("returned items slice is a copy", func(t *testing.T) {
		o := newTestOrder(t)

		items := o.Items()
		items[0] = order.Item{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should move created order to paid", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Pay())
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject pay from any other status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Paid, order.Progress, order.Cancelled, order.Dispatched, order.Delivered,
		} {
			o := orderInStatus(t, status)

			err := o.Pay()

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, status, o.Status(), "status must be unchanged after rejected pay")
		}
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel created and paid orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Created, order.Paid} {
			o := orderInStatus(t, status)

			require.NoError(t, o.Cancel())
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})

	t.Run("should reject cancel from any other status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Progress, order.Cancelled, order.Dispatched, order.Delivered,
		} {
			o := orderInStatus(t, status)

			err := o.Cancel()

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("repeated cancel fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_KitchenFlow(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Pay())
		require.NoError(t, o.StartCooking())
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.Deliver())

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("delivered order accepts no further events", func(t *testing.T) {
		o := orderInStatus(t, order.Delivered)

		require.ErrorIs(t, o.Pay(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.StartCooking(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Dispatch(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
	})

	t.Run("cannot skip progress", func(t *testing.T) {
		o := orderInStatus(t, order.Paid)

		require.ErrorIs(t, o.Dispatch(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
	})
}

func TestOrder_ValidateDelete(t *testing.T) {
	t.Run("deletable in created and cancelled", func(t *testing.T) {
		require.NoError(t, orderInStatus(t, order.Created).ValidateDelete())
		require.NoError(t, orderInStatus(t, order.Cancelled).ValidateDelete())
	})

	t.Run("not deletable once paid or in the kitchen", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Paid, order.Progress, order.Dispatched, order.Delivered,
		} {
			err := orderInStatus(t, status).ValidateDelete()
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}
