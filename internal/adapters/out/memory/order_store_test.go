package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchsim/internal/adapters/out/memory"
	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/pkg/errs"
)

func newStoredOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id, "Cheese Pizza", 4*time.Second)
	require.NoError(t, err)

	return o
}

func newReadyOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	o := newStoredOrder(t, id)
	require.NoError(t, o.MarkReady(time.Now()))

	return o
}

func TestOrderStoreAdd(t *testing.T) {
	t.Run("should add and retrieve order", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		o := newStoredOrder(t, "order-1")

		require.NoError(t, store.Add(ctx, o))

		got, err := store.Get(ctx, "order-1")
		require.NoError(t, err)
		assert.True(t, o.IsEqual(got))
	})

	t.Run("should reject duplicate order id", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newStoredOrder(t, "order-1")))

		err := store.Add(ctx, newStoredOrder(t, "order-1"))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()

		err := store.Add(ctx, &order.Order{})

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrderStoreGet(t *testing.T) {
	t.Run("should fail for unknown order", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()

		_, err := store.Get(ctx, "missing")

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail for empty id", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()

		_, err := store.Get(ctx, "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderStoreAll(t *testing.T) {
	t.Run("should return orders in submission order", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		ids := []string{"order-1", "order-2", "order-3"}
		for _, id := range ids {
			require.NoError(t, store.Add(ctx, newStoredOrder(t, id)))
		}

		all, err := store.All(ctx)

		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, o := range all {
			assert.Equal(t, ids[i], o.ID())
		}
	})
}

func TestOrderStoreCounts(t *testing.T) {
	t.Run("should count orders by status and claim state", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newStoredOrder(t, "order-1")))
		require.NoError(t, store.Add(ctx, newReadyOrder(t, "order-2")))
		claimed := newReadyOrder(t, "order-3")
		require.NoError(t, claimed.Claim(7))
		require.NoError(t, store.Add(ctx, claimed))

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		preparing, err := store.CountByStatus(ctx, order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, 1, preparing)

		ready, err := store.CountByStatus(ctx, order.Ready)
		require.NoError(t, err)
		assert.Equal(t, 2, ready)

		claimedCount, err := store.CountClaimed(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, claimedCount)
	})
}

func TestOrderStoreClaimFirstReady(t *testing.T) {
	t.Run("should return false when store is empty", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()

		claimed, ok := store.ClaimFirstReady(ctx, 1)

		assert.False(t, ok)
		assert.Nil(t, claimed)
	})

	t.Run("should return false when no order is ready", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newStoredOrder(t, "order-1")))

		claimed, ok := store.ClaimFirstReady(ctx, 1)

		assert.False(t, ok)
		assert.Nil(t, claimed)
	})

	t.Run("should claim the first ready order in submission order", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newStoredOrder(t, "order-1")))
		require.NoError(t, store.Add(ctx, newReadyOrder(t, "order-2")))
		require.NoError(t, store.Add(ctx, newReadyOrder(t, "order-3")))

		claimed, ok := store.ClaimFirstReady(ctx, 9)

		require.True(t, ok)
		assert.Equal(t, "order-2", claimed.ID())

		courierID, assigned := claimed.AssignedCourier()
		assert.True(t, assigned)
		assert.Equal(t, 9, courierID)
	})

	t.Run("should prefer an earlier order that became ready later", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		first := newStoredOrder(t, "order-1")
		require.NoError(t, store.Add(ctx, first))
		require.NoError(t, store.Add(ctx, newReadyOrder(t, "order-2")))

		claimed, ok := store.ClaimFirstReady(ctx, 1)
		require.True(t, ok)
		assert.Equal(t, "order-2", claimed.ID())

		require.NoError(t, first.MarkReady(time.Now()))

		claimed, ok = store.ClaimFirstReady(ctx, 2)
		require.True(t, ok)
		assert.Equal(t, "order-1", claimed.ID())
	})

	t.Run("should prefer the earliest submitted of two ready orders", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		first := newStoredOrder(t, "order-1")
		second := newStoredOrder(t, "order-2")
		require.NoError(t, store.Add(ctx, first))
		require.NoError(t, store.Add(ctx, second))

		// order-2 became ready a full second before order-1
		base := time.Now()
		require.NoError(t, second.MarkReady(base))
		require.NoError(t, first.MarkReady(base.Add(time.Second)))

		claimed, ok := store.ClaimFirstReady(ctx, 1)

		require.True(t, ok)
		assert.Equal(t, "order-1", claimed.ID())
	})

	t.Run("should skip already claimed orders", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newReadyOrder(t, "order-1")))
		require.NoError(t, store.Add(ctx, newReadyOrder(t, "order-2")))

		first, ok := store.ClaimFirstReady(ctx, 1)
		require.True(t, ok)
		second, ok := store.ClaimFirstReady(ctx, 2)
		require.True(t, ok)

		assert.Equal(t, "order-1", first.ID())
		assert.Equal(t, "order-2", second.ID())

		_, ok = store.ClaimFirstReady(ctx, 3)
		assert.False(t, ok)
	})

	t.Run("should hand each order to exactly one concurrent claimer", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewOrderStore()
		const orders = 20
		for i := range orders {
			require.NoError(t, store.Add(ctx, newReadyOrder(t, fmt.Sprintf("order-%d", i))))
		}

		var wg sync.WaitGroup
		claims := make(chan string, orders)
		for courierID := 1; courierID <= orders; courierID++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				claimed, ok := store.ClaimFirstReady(ctx, courierID)
				if ok {
					claims <- claimed.ID()
				}
			}()
		}
		wg.Wait()
		close(claims)

		seen := make(map[string]bool)
		for id := range claims {
			assert.False(t, seen[id], "order %s claimed twice", id)
			seen[id] = true
		}
		assert.Len(t, seen, orders)
	})
}
