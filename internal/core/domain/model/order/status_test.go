package order_test

import (
	"testing"

	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("all named statuses are valid", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusDraft,
			order.StatusQuoteRequested,
			order.StatusQuoteSent,
			order.StatusQuoteApproved,
			order.StatusQuoteExpired,
			order.StatusDepositPending,
			order.StatusDepositPaid,
			order.StatusScheduled,
			order.StatusInProduction,
			order.StatusOnHold,
			order.StatusInPacking,
			order.StatusPacked,
			order.StatusInvoiceSent,
			order.StatusInvoicePaid,
			order.StatusReadyToShip,
			order.StatusLabelCreated,
			order.StatusShipped,
			order.StatusCancelled,
			order.StatusArchived,
		}

		assert.Len(t, statuses, 19)
		for _, s := range statuses {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		require.ErrorIs(t, order.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
		require.Error(t, order.Status(-1).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "draft", order.StatusDraft.String())
	assert.Equal(t, "in_production", order.StatusInProduction.String())
	assert.Equal(t, "ready_to_ship", order.StatusReadyToShip.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for s := order.StatusDraft; s <= order.StatusArchived; s++ {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("teleported")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the unknown placeholder", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusShipped.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusDraft.IsTerminal())
	assert.False(t, order.StatusArchived.IsTerminal())
}

func TestStatus_IsNotifiableMilestone(t *testing.T) {
	notifiable := []order.Status{
		order.StatusInProduction,
		order.StatusInPacking,
		order.StatusPacked,
		order.StatusShipped,
	}
	for _, s := range notifiable {
		assert.True(t, s.IsNotifiableMilestone(), s.String())
	}

	assert.False(t, order.StatusDraft.IsNotifiableMilestone())
	assert.False(t, order.StatusCancelled.IsNotifiableMilestone())
	assert.False(t, order.StatusInvoicePaid.IsNotifiableMilestone())
}
