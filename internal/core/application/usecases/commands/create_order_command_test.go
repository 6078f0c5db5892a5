package commands_test

import (
	"testing"

	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	subtotal, err := kernel.NewMoney(125000)
	require.NoError(t, err)
	deposit, err := kernel.NewMoney(50000)
	require.NoError(t, err)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("BW-1042", subtotal, true, deposit)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "BW-1042", cmd.HumanUID())
		assert.Equal(t, subtotal, cmd.Subtotal())
		assert.True(t, cmd.DepositRequired())
		assert.Equal(t, deposit, cmd.DepositAmount())
		assert.NoError(t, cmd.OrderID().Validate())
		assert.NotEmpty(t, cmd.QuoteLinkToken())
	})

	t.Run("empty humanUID is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("  ", subtotal, false, kernel.Money{})

		require.ErrorIs(t, err, commands.ErrHumanUIDIsRequired)
	})

	t.Run("commands generate unique IDs and tokens", func(t *testing.T) {
		cmd1, err := commands.NewCreateOrderCommand("BW-1", subtotal, false, kernel.Money{})
		require.NoError(t, err)
		cmd2, err := commands.NewCreateOrderCommand("BW-2", subtotal, false, kernel.Money{})
		require.NoError(t, err)

		assert.NotEqual(t, cmd1.OrderID(), cmd2.OrderID())
		assert.NotEqual(t, cmd1.QuoteLinkToken(), cmd2.QuoteLinkToken())
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
