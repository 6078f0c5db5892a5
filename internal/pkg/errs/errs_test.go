package errs_test

import (
	"errors"
	"testing"

	"bottleworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, "object not found: 123", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("batchId", "b-42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: batchId, ID is: b-42 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("value is invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("value is invalid with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown enum value"))

		assert.Equal(t, "value is invalid: status (cause: unknown enum value)", err.Error())
	})

	t.Run("value is required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("overrideNote")

		assert.Equal(t, "value is required: overrideNote", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("value is out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("priorityIndex", 150, 0, 120)

		assert.Equal(t, "value is invalid: 150 is priorityIndex, min value is 0, max value is 120", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("note", errors.New("hello\nworld"))

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestBlockedTransitionError(t *testing.T) {
	err := errs.NewBlockedTransitionError(
		"o-1", "deposit_pending", "in_production",
		[]string{"deposit unpaid", "no workflow steps defined"},
	)

	require.ErrorIs(t, err, errs.ErrTransitionBlocked)
	// Blocker strings are operator-facing and must survive verbatim.
	assert.Contains(t, err.Error(), "deposit unpaid")
	assert.Contains(t, err.Error(), "no workflow steps defined")
	assert.Contains(t, err.Error(), "deposit_pending")
	assert.Contains(t, err.Error(), "in_production")
}

func TestOverrideRequiredError(t *testing.T) {
	t.Run("with warnings", func(t *testing.T) {
		err := errs.NewOverrideRequiredError("o-1", "quote_sent", "cancelled", []string{"quote already sent"})

		require.ErrorIs(t, err, errs.ErrOverrideRequired)
		assert.Contains(t, err.Error(), "justification note")
		assert.Contains(t, err.Error(), "quote already sent")
	})

	t.Run("without warnings", func(t *testing.T) {
		err := errs.NewOverrideRequiredError("o-1", "quote_sent", "cancelled", nil)

		assert.Contains(t, err.Error(), "justification note")
	})
}

func TestInvalidStepStateError(t *testing.T) {
	err := errs.NewInvalidStepStateError("label", "pending", "wip")

	require.ErrorIs(t, err, errs.ErrInvalidStepState)
	assert.Equal(t, "invalid step state: step label is pending, must be wip", err.Error())
}

func TestQuantityErrors(t *testing.T) {
	t.Run("mismatch", func(t *testing.T) {
		err := errs.NewQuantityMismatchError(100, 97)

		require.ErrorIs(t, err, errs.ErrQuantityMismatch)
		assert.Equal(t, "quantity mismatch: split quantities sum to 97, planned quantity is 100", err.Error())
	})

	t.Run("overrun", func(t *testing.T) {
		err := errs.NewQuantityOverrunError(100, 80, 30)

		require.ErrorIs(t, err, errs.ErrQuantityOverrun)
		assert.Equal(t, "quantity overrun: good 80 + scrap 30 exceeds planned 100", err.Error())
	})
}

func TestConflictingUpdateError(t *testing.T) {
	err := errs.NewConflictingUpdateError("order", "o-1")

	require.ErrorIs(t, err, errs.ErrConflictingUpdate)
	assert.Contains(t, err.Error(), "reload and retry")
}

func TestUpstreamUnavailableError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := errs.NewUpstreamUnavailableError("transition validator", cause)

	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	assert.Equal(t, "upstream unavailable: transition validator (cause: dial tcp: connection refused)", err.Error())
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrTransitionBlocked,
		errs.ErrOverrideRequired,
		errs.ErrInvalidStepState,
		errs.ErrQuantityMismatch,
		errs.ErrQuantityOverrun,
		errs.ErrConflictingUpdate,
		errs.ErrUpstreamUnavailable,
	}
	for _, s := range sentinels {
		require.Error(t, s)
	}
}
