package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchsim/internal/adapters/out/memory"
	"dispatchsim/internal/core/application/usecases/queries"
	"dispatchsim/internal/core/domain/model/order"
)

func TestGetOrderBacklogQueryHandler(t *testing.T) {
	t.Run("should count orders by progress stage", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()

		preparing, err := order.NewOrder("order-1", "Pad Thai", 4*time.Second)
		require.NoError(t, err)
		require.NoError(t, store.Add(ctx, preparing))

		ready, err := order.NewOrder("order-2", "Ramen", 2*time.Second)
		require.NoError(t, err)
		require.NoError(t, ready.MarkReady(time.Now()))
		require.NoError(t, store.Add(ctx, ready))

		claimed, err := order.NewOrder("order-3", "Gyoza", time.Second)
		require.NoError(t, err)
		require.NoError(t, claimed.MarkReady(time.Now()))
		require.NoError(t, claimed.Claim(1))
		require.NoError(t, store.Add(ctx, claimed))

		handler := queries.NewGetOrderBacklogQueryHandler(store)

		response, err := handler.Handle(ctx, queries.NewGetOrderBacklogQuery())

		require.NoError(t, err)
		assert.Equal(t, 3, response.Submitted)
		assert.Equal(t, 1, response.Preparing)
		assert.Equal(t, 2, response.Ready)
		assert.Equal(t, 1, response.Claimed)
	})

	t.Run("should return zero counts for empty store", func(t *testing.T) {
		handler := queries.NewGetOrderBacklogQueryHandler(memory.NewOrderStore())

		response, err := handler.Handle(context.Background(), queries.NewGetOrderBacklogQuery())

		require.NoError(t, err)
		assert.Equal(t, queries.GetOrderBacklogQueryResponse{}, response)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		handler := queries.NewGetOrderBacklogQueryHandler(memory.NewOrderStore())

		_, err := handler.Handle(context.Background(), queries.GetOrderBacklogQuery{})

		assert.ErrorIs(t, err, queries.ErrGetOrderBacklogQueryIsNotConstructed)
	})
}

func TestNewGetOrderBacklogQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		assert.NoError(t, queries.NewGetOrderBacklogQuery().Validate())
	})
}
