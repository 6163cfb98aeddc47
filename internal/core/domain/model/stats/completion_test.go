package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchsim/internal/core/domain/model/stats"
)

func newTestCompletion(t *testing.T, courierWait, orderWait time.Duration) *stats.Completion {
	t.Helper()

	completion, err := stats.NewCompletion(1, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", courierWait, orderWait, time.Now())
	require.NoError(t, err)

	return completion
}

func TestNewCompletion(t *testing.T) {
	t.Run("should create completion with valid parameters", func(t *testing.T) {
		recordedAt := time.Now()

		completion, err := stats.NewCompletion(3, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", 2*time.Second, 0, recordedAt)

		require.NoError(t, err)
		assert.NoError(t, completion.Validate())
		assert.NotEmpty(t, completion.ID().String())
		assert.Equal(t, 3, completion.CourierID())
		assert.Equal(t, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", completion.OrderID())
		assert.Equal(t, 2*time.Second, completion.CourierWait())
		assert.Equal(t, time.Duration(0), completion.OrderWait())
		assert.Equal(t, recordedAt, completion.RecordedAt())
	})

	t.Run("should allow both waits to be zero", func(t *testing.T) {
		completion, err := stats.NewCompletion(1, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", 0, 0, time.Now())

		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), completion.CourierWait())
		assert.Equal(t, time.Duration(0), completion.OrderWait())
	})

	t.Run("should fail when both waits are positive", func(t *testing.T) {
		_, err := stats.NewCompletion(1, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", time.Second, time.Second, time.Now())

		assert.ErrorIs(t, err, stats.ErrWaitSplitIsNotZeroSum)
	})

	t.Run("should fail with negative courier wait", func(t *testing.T) {
		_, err := stats.NewCompletion(1, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", -time.Second, 0, time.Now())

		assert.Error(t, err)
	})

	t.Run("should fail with negative order wait", func(t *testing.T) {
		_, err := stats.NewCompletion(1, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", 0, -time.Second, time.Now())

		assert.Error(t, err)
	})

	t.Run("should fail with non-positive courier id", func(t *testing.T) {
		_, err := stats.NewCompletion(0, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", 0, 0, time.Now())

		assert.Error(t, err)
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		_, err := stats.NewCompletion(1, "", 0, 0, time.Now())

		assert.Error(t, err)
	})

	t.Run("should fail with zero recorded time", func(t *testing.T) {
		_, err := stats.NewCompletion(1, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", 0, 0, time.Time{})

		assert.Error(t, err)
	})
}

func TestCompletionValidate(t *testing.T) {
	t.Run("should fail for completion created without constructor", func(t *testing.T) {
		completion := &stats.Completion{}

		err := completion.Validate()

		assert.ErrorIs(t, err, stats.ErrCompletionIsNotConstructed)
	})

	t.Run("should fail for nil completion", func(t *testing.T) {
		var completion *stats.Completion

		err := completion.Validate()

		assert.ErrorIs(t, err, stats.ErrCompletionIsNotConstructed)
	})
}

func TestCompletionIsEqual(t *testing.T) {
	t.Run("should be equal to itself", func(t *testing.T) {
		completion := newTestCompletion(t, 0, time.Second)

		assert.True(t, completion.IsEqual(completion))
	})

	t.Run("should not be equal to another completion", func(t *testing.T) {
		first := newTestCompletion(t, 0, time.Second)
		second := newTestCompletion(t, 0, time.Second)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("should not be equal to nil", func(t *testing.T) {
		completion := newTestCompletion(t, 0, time.Second)

		assert.False(t, completion.IsEqual(nil))
	})
}
