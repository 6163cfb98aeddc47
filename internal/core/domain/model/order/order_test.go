package order_test

import (
	"sync"
	"testing"
	"time"

	"dispatchsim/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder("a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", "Banana Split", 4*time.Second)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("order-1", "Pressed Juice", 2*time.Second)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, "order-1", o.ID())
		assert.Equal(t, "Pressed Juice", o.Name())
		assert.Equal(t, 2*time.Second, o.PrepDuration())
		assert.Equal(t, order.Preparing, o.Status())
		assert.False(t, o.IsReady())
		assert.False(t, o.IsClaimed())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		o, err := order.NewOrder("", "Pressed Juice", 2*time.Second)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: id")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		o, err := order.NewOrder("order-1", "", 2*time.Second)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: name")
	})

	t.Run("should fail with zero prep duration", func(t *testing.T) {
		o, err := order.NewOrder("order-1", "Pressed Juice", 0)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "prep duration is invalid")
	})

	t.Run("should fail with negative prep duration", func(t *testing.T) {
		o, err := order.NewOrder("order-1", "Pressed Juice", -time.Second)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "prep duration is invalid")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder("", "", -1)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: id")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "prep duration is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_MarkReady(t *testing.T) {
	t.Run("should record readiness exactly once", func(t *testing.T) {
		o := newTestOrder(t)
		readyTime := time.Now()

		err := o.MarkReady(readyTime)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.True(t, o.IsReady())

		at, ok := o.ReadyAt()
		assert.True(t, ok)
		assert.Equal(t, readyTime, at)
	})

	t.Run("should reject a second readiness mark", func(t *testing.T) {
		o := newTestOrder(t)
		firstTime := time.Now()
		require.NoError(t, o.MarkReady(firstTime))

		err := o.MarkReady(firstTime.Add(time.Second))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Ready is not a valid status to become ready")

		at, _ := o.ReadyAt()
		assert.Equal(t, firstTime, at) // first timestamp preserved
	})

	t.Run("should reject zero time", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.MarkReady(time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: ready time")
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("should claim a ready order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkReady(time.Now()))

		err := o.Claim(3)

		require.NoError(t, err)
		assert.True(t, o.IsClaimed())

		courierID, ok := o.AssignedCourier()
		assert.True(t, ok)
		assert.Equal(t, 3, courierID)
	})

	t.Run("should reject claiming an order that is still preparing", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Claim(3)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotReady, err)
		assert.False(t, o.IsClaimed())
	})

	t.Run("should reject a second claim", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkReady(time.Now()))
		require.NoError(t, o.Claim(3))

		err := o.Claim(4)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderAlreadyClaimed, err)

		courierID, _ := o.AssignedCourier()
		assert.Equal(t, 3, courierID) // first claimer preserved
	})

	t.Run("should reject non-positive courier id", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkReady(time.Now()))

		err := o.Claim(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "courier id is invalid")
		assert.False(t, o.IsClaimed())
	})

	t.Run("should grant exactly one of many concurrent claims", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkReady(time.Now()))

		const claimers = 20
		var wg sync.WaitGroup
		successes := make(chan int, claimers)

		for courierID := 1; courierID <= claimers; courierID++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				if err := o.Claim(id); err == nil {
					successes <- id
				}
			}(courierID)
		}
		wg.Wait()
		close(successes)

		winners := make([]int, 0, 1)
		for id := range successes {
			winners = append(winners, id)
		}
		require.Len(t, winners, 1)

		courierID, ok := o.AssignedCourier()
		assert.True(t, ok)
		assert.Equal(t, winners[0], courierID)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should return true for orders with same ID", func(t *testing.T) {
		o1, _ := order.NewOrder("order-1", "Pasta", time.Second)
		o2, _ := order.NewOrder("order-1", "Pizza", 2*time.Second)

		assert.True(t, o1.IsEqual(o2))
		assert.True(t, o2.IsEqual(o1))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		o1, _ := order.NewOrder("order-1", "Pasta", time.Second)
		o2, _ := order.NewOrder("order-2", "Pasta", time.Second)

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		o1, _ := order.NewOrder("order-1", "Pasta", time.Second)

		assert.False(t, o1.IsEqual(nil))
	})
}

func TestOrder_String(t *testing.T) {
	t.Run("should format label with uppercased id prefix", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, "#A8CFCB76 Banana Split", o.String())
	})

	t.Run("should keep short ids whole", func(t *testing.T) {
		o, _ := order.NewOrder("ab12", "Pasta", time.Second)

		assert.Equal(t, "#AB12 Pasta", o.String())
	})
}
