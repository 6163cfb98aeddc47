package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchsim/internal/core/application/usecases/commands"
)

func TestNewSubmitOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand("a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", "Cheese Pizza", 4*time.Second)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", cmd.OrderID())
		assert.Equal(t, "Cheese Pizza", cmd.Name())
		assert.Equal(t, 4*time.Second, cmd.PrepDuration())
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("", "Cheese Pizza", 4*time.Second)

		assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("order-1", "", 4*time.Second)

		assert.ErrorIs(t, err, commands.ErrOrderNameIsRequired)
	})

	t.Run("should fail with zero prep duration", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("order-1", "Cheese Pizza", 0)

		assert.ErrorIs(t, err, commands.ErrPrepDurationIsInvalid)
	})

	t.Run("should fail with negative prep duration", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("order-1", "Cheese Pizza", -time.Second)

		assert.ErrorIs(t, err, commands.ErrPrepDurationIsInvalid)
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("", "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
		assert.ErrorIs(t, err, commands.ErrOrderNameIsRequired)
		assert.ErrorIs(t, err, commands.ErrPrepDurationIsInvalid)
	})
}

func TestSubmitOrderCommandValidate(t *testing.T) {
	t.Run("should fail for command created without constructor", func(t *testing.T) {
		var cmd commands.SubmitOrderCommand

		err := cmd.Validate()

		assert.ErrorIs(t, err, commands.ErrSubmitOrderCommandIsNotConstructed)
	})
}
