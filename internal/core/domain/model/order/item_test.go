package order_test

import (
	"fmt"
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item and generate an id", func(t *testing.T) {
		item, err := order.NewItem(order.ProductCheese, order.SizeMedium, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		require.NoError(t, item.ID().Validate())
		assert.Equal(t, order.ProductCheese, item.Product())
		assert.Equal(t, order.SizeMedium, item.Size())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("should generate distinct ids per item", func(t *testing.T) {
		first, err := order.NewItem(order.ProductCoke, order.SizeSmall, 1)
		require.NoError(t, err)

		second, err := order.NewItem(order.ProductCoke, order.SizeSmall, 1)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("should accept boundary quantities", func(t *testing.T) {
		for _, quantity := range []int{order.MinQuantity, order.MaxQuantity} {
			item, err := order.NewItem(order.ProductDeluxe, order.SizeLarge, quantity)

			require.NoError(t, err)
			assert.Equal(t, quantity, item.Quantity())
		}
	})

	t.Run("should reject out-of-range quantities", func(t *testing.T) {
		for _, quantity := range []int{0, 11, -1, 100} {
			t.Run(fmt.Sprintf("quantity %d", quantity), func(t *testing.T) {
				_, err := order.NewItem(order.ProductDeluxe, order.SizeLarge, quantity)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("should reject invalid product", func(t *testing.T) {
		_, err := order.NewItem(order.UnknownProduct, order.SizeSmall, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product")
	})

	t.Run("should reject invalid size", func(t *testing.T) {
		_, err := order.NewItem(order.ProductHawaiian, order.UnknownSize, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "size")
	})

	t.Run("should report all violations at once", func(t *testing.T) {
		_, err := order.NewItem(order.UnknownProduct, order.UnknownSize, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product")
		assert.Contains(t, err.Error(), "size")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should keep the supplied id", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := order.RestoreItem(id, order.ProductVeggie, order.SizeXlarge, 3)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
	})

	t.Run("should reject a zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.RestoreItem(id, order.ProductVeggie, order.SizeXlarge, 3)

		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero-value item fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}

func TestProductFromString(t *testing.T) {
	t.Run("should parse the whole catalog", func(t *testing.T) {
		catalog := map[string]order.Product{
			"cheese":    order.ProductCheese,
			"pepperoni": order.ProductPepperoni,
			"deluxe":    order.ProductDeluxe,
			"hawaiian":  order.ProductHawaiian,
			"canadian":  order.ProductCanadian,
			"veggie":    order.ProductVeggie,
			"coke":      order.ProductCoke,
			"sprite":    order.ProductSprite,
			"gingerale": order.ProductGingerale,
			"icedtea":   order.ProductIcedtea,
		}

		for name, expected := range catalog {
			product, err := order.ProductFromString(name)

			require.NoError(t, err)
			assert.Equal(t, expected, product)
			assert.Equal(t, name, product.String())
		}
	})

	t.Run("should reject products outside the catalog", func(t *testing.T) {
		for _, name := range []string{"", "Cheese", "pizza", "fanta"} {
			product, err := order.ProductFromString(name)

			require.Error(t, err)
			assert.Equal(t, order.UnknownProduct, product)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestSizeFromString(t *testing.T) {
	t.Run("should parse all sizes", func(t *testing.T) {
		sizes := map[string]order.Size{
			"small":  order.SizeSmall,
			"medium": order.SizeMedium,
			"large":  order.SizeLarge,
			"xlarge": order.SizeXlarge,
		}

		for name, expected := range sizes {
			size, err := order.SizeFromString(name)

			require.NoError(t, err)
			assert.Equal(t, expected, size)
			assert.Equal(t, name, size.String())
		}
	})

	t.Run("should reject unknown sizes", func(t *testing.T) {
		for _, name := range []string{"", "XL", "huge"} {
			size, err := order.SizeFromString(name)

			require.Error(t, err)
			assert.Equal(t, order.UnknownSize, size)
		}
	})
}
