package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(id))
	})

	t.Run("should fail with zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := queries.NewGetOrderQuery(id)

		require.Error(t, err)
	})
}

func TestGetOrderQuery_Validate(t *testing.T) {
	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery

		err := query.Validate()

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}
