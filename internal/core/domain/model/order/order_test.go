package order_test

import (
	"testing"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	subtotal, _ := kernel.NewMoney(1000_00)
	deposit, _ := kernel.NewMoney(250_00)
	o, err := order.NewOrder(kernel.NewUUID(), "BW-1042", "tok-abc123", subtotal, true, deposit)
	require.NoError(t, err)
	return o
}

func verdict(t *testing.T, current, next order.Status, warnings, blockers []string, override bool) order.ValidationResult {
	t.Helper()

	result, err := order.NewValidationResult(current, next, warnings, blockers, override)
	require.NoError(t, err)
	return result
}

func TestNewOrder(t *testing.T) {
	subtotal, _ := kernel.NewMoney(1000_00)
	deposit, _ := kernel.NewMoney(250_00)

	t.Run("creates order in draft with unpaid deposit", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "BW-1042", "tok-abc123", subtotal, true, deposit)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "BW-1042", o.HumanUID())
		assert.Equal(t, "tok-abc123", o.QuoteLinkToken())
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Equal(t, order.DepositUnpaid, o.DepositStatus())
		assert.True(t, o.DepositRequired())
		assert.Equal(t, 1, o.Version())
		assert.Nil(t, o.QuoteExpiresAt())
	})

	t.Run("fails with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "BW-1042", "tok", subtotal, false, deposit)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("fails with blank human UID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "   ", "tok", subtotal, false, deposit)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with blank quote link token", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "BW-1", "", subtotal, false, deposit)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	subtotal, _ := kernel.NewMoney(500_00)
	deposit, _ := kernel.NewMoney(100_00)
	expires := time.Now().Add(72 * time.Hour)

	t.Run("restores full persisted state", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(id, "BW-7", "tok", order.StatusInProduction,
			subtotal, true, deposit, order.DepositPaid, &expires, nil, nil, 5)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProduction, o.Status())
		assert.Equal(t, order.DepositPaid, o.DepositStatus())
		assert.Equal(t, 5, o.Version())
		assert.Equal(t, expires, *o.QuoteExpiresAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "BW-7", "tok", order.StatusUnknown,
			subtotal, false, deposit, order.DepositUnpaid, nil, nil, nil, 1)

		require.Error(t, err)
	})

	t.Run("rejects version below one", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "BW-7", "tok", order.StatusDraft,
			subtotal, false, deposit, order.DepositUnpaid, nil, nil, nil, 0)

		require.Error(t, err)
	})
}

func TestOrder_ApplyTransition(t *testing.T) {
	t.Run("applies clean transition", func(t *testing.T) {
		o := newTestOrder(t)
		result := verdict(t, order.StatusDraft, order.StatusQuoteRequested, nil, nil, false)

		err := o.ApplyTransition(result, "")

		require.NoError(t, err)
		assert.Equal(t, order.StatusQuoteRequested, o.Status())
	})

	t.Run("blockers reject and leave status untouched", func(t *testing.T) {
		o := newTestOrder(t)
		result := verdict(t, order.StatusDraft, order.StatusInProduction,
			nil, []string{"deposit unpaid", "no workflow steps defined"}, false)

		err := o.ApplyTransition(result, "")

		require.ErrorIs(t, err, errs.ErrTransitionBlocked)
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Contains(t, err.Error(), "deposit unpaid")
		assert.Contains(t, err.Error(), "no workflow steps defined")
	})

	t.Run("override without note is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		result := verdict(t, order.StatusDraft, order.StatusCancelled,
			[]string{"quote already sent"}, nil, true)

		err := o.ApplyTransition(result, "")

		require.ErrorIs(t, err, errs.ErrOverrideRequired)
		assert.Equal(t, order.StatusDraft, o.Status())
	})

	t.Run("override with whitespace-only note is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		result := verdict(t, order.StatusDraft, order.StatusCancelled, nil, nil, true)

		err := o.ApplyTransition(result, "   \t ")

		require.ErrorIs(t, err, errs.ErrOverrideRequired)
	})

	t.Run("override with note succeeds", func(t *testing.T) {
		o := newTestOrder(t)
		result := verdict(t, order.StatusDraft, order.StatusCancelled, nil, nil, true)

		err := o.ApplyTransition(result, "customer withdrew the PO")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("warnings without blockers allow the transition", func(t *testing.T) {
		o := newTestOrder(t)
		result := verdict(t, order.StatusDraft, order.StatusQuoteRequested,
			[]string{"subtotal is zero"}, nil, false)

		err := o.ApplyTransition(result, "")

		require.NoError(t, err)
		assert.Equal(t, order.StatusQuoteRequested, o.Status())
	})

	t.Run("stale verdict raises conflicting update", func(t *testing.T) {
		o := newTestOrder(t)
		// Validator observed quote_sent, aggregate is still draft.
		result := verdict(t, order.StatusQuoteSent, order.StatusQuoteApproved, nil, nil, false)

		err := o.ApplyTransition(result, "")

		require.ErrorIs(t, err, errs.ErrConflictingUpdate)
		assert.Equal(t, order.StatusDraft, o.Status())
	})

	t.Run("unconstructed verdict is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		var zero order.ValidationResult

		err := o.ApplyTransition(zero, "")

		require.Error(t, err)
	})
}

func TestOrder_RecordDepositCapture(t *testing.T) {
	t.Run("zero captured stays unpaid", func(t *testing.T) {
		o := newTestOrder(t)
		captured, _ := kernel.NewMoney(0)

		require.NoError(t, o.RecordDepositCapture(captured))
		assert.Equal(t, order.DepositUnpaid, o.DepositStatus())
	})

	t.Run("partial capture moves to partial", func(t *testing.T) {
		o := newTestOrder(t)
		captured, _ := kernel.NewMoney(100_00)

		require.NoError(t, o.RecordDepositCapture(captured))
		assert.Equal(t, order.DepositPartial, o.DepositStatus())
	})

	t.Run("full capture moves to paid", func(t *testing.T) {
		o := newTestOrder(t)
		captured, _ := kernel.NewMoney(250_00)

		require.NoError(t, o.RecordDepositCapture(captured))
		assert.Equal(t, order.DepositPaid, o.DepositStatus())
	})

	t.Run("overpayment still counts as paid", func(t *testing.T) {
		o := newTestOrder(t)
		captured, _ := kernel.NewMoney(400_00)

		require.NoError(t, o.RecordDepositCapture(captured))
		assert.Equal(t, order.DepositPaid, o.DepositStatus())
	})
}

func TestOrder_QuoteLapsed(t *testing.T) {
	now := time.Now()
	subtotal, _ := kernel.NewMoney(500_00)
	deposit, _ := kernel.NewMoney(0)

	t.Run("sent quote past expiry has lapsed", func(t *testing.T) {
		expired := now.Add(-time.Hour)
		o, err := order.RestoreOrder(kernel.NewUUID(), "BW-9", "tok", order.StatusQuoteSent,
			subtotal, false, deposit, order.DepositUnpaid, &expired, nil, nil, 1)
		require.NoError(t, err)

		assert.True(t, o.QuoteLapsed(now))
	})

	t.Run("sent quote before expiry has not lapsed", func(t *testing.T) {
		future := now.Add(time.Hour)
		o, err := order.RestoreOrder(kernel.NewUUID(), "BW-9", "tok", order.StatusQuoteSent,
			subtotal, false, deposit, order.DepositUnpaid, &future, nil, nil, 1)
		require.NoError(t, err)

		assert.False(t, o.QuoteLapsed(now))
	})

	t.Run("non-quote statuses never lapse", func(t *testing.T) {
		expired := now.Add(-time.Hour)
		o, err := order.RestoreOrder(kernel.NewUUID(), "BW-9", "tok", order.StatusInProduction,
			subtotal, false, deposit, order.DepositUnpaid, &expired, nil, nil, 1)
		require.NoError(t, err)

		assert.False(t, o.QuoteLapsed(now))
	})

	t.Run("no expiry set never lapses", func(t *testing.T) {
		o := newTestOrder(t)

		assert.False(t, o.QuoteLapsed(now))
	})
}

func TestValidationResult(t *testing.T) {
	t.Run("valid when no blockers", func(t *testing.T) {
		result, err := order.NewValidationResult(order.StatusDraft, order.StatusQuoteRequested,
			[]string{"warn"}, nil, false)

		require.NoError(t, err)
		assert.True(t, result.Valid())
		assert.Equal(t, []string{"warn"}, result.Warnings())
		assert.Empty(t, result.Blockers())
	})

	t.Run("invalid when blockers present", func(t *testing.T) {
		result, err := order.NewValidationResult(order.StatusDraft, order.StatusShipped,
			nil, []string{"batches incomplete"}, false)

		require.NoError(t, err)
		assert.False(t, result.Valid())
	})

	t.Run("rejects invalid statuses", func(t *testing.T) {
		_, err := order.NewValidationResult(order.StatusUnknown, order.StatusDraft, nil, nil, false)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var zero order.ValidationResult

		require.ErrorIs(t, zero.Validate(), order.ErrValidationResultIsNotConstructed)
	})
}
