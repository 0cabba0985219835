package errs_test

import (
	"context"
	"errors"
	"testing"

	"driverhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("commission")

		assert.Equal(t, "commission", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: commission", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative amount")
		err := errs.NewValueIsInvalidErrorWithCause("commission", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: commission (cause: negative amount)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("identityKey")

	assert.Equal(t, "identityKey", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: identityKey", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order is already claimed")

		assert.Equal(t, "order is already claimed", err.Reason)
		assert.Equal(t, "conflict: order is already claimed", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 rows affected")
		err := errs.NewConflictErrorWithCause("order is already claimed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: order is already claimed (cause: 0 rows affected)", err.Error())
	})
}

func TestPermissionDeniedError(t *testing.T) {
	err := errs.NewPermissionDeniedError("not the claiming driver")

	assert.Equal(t, "not the claiming driver", err.Reason)
	assert.Equal(t, "permission denied: not the claiming driver", err.Error())
	assert.Equal(t, errs.ErrPermissionDenied, err.Unwrap())
}

func TestStoreUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewStoreUnavailableError("orders.claim", cause)

	assert.Equal(t, "orders.claim", err.Op)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "store unavailable: orders.claim (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrStoreUnavailable, err.Unwrap())
}

func TestWrapStoreUnavailable(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.WrapStoreUnavailable("orders.get", nil))
	})

	t.Run("deadline expiry becomes StoreUnavailable", func(t *testing.T) {
		err := errs.WrapStoreUnavailable("orders.get", context.DeadlineExceeded)

		require.ErrorIs(t, err, errs.ErrStoreUnavailable)

		var storeErr *errs.StoreUnavailableError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "orders.get", storeErr.Op)
		assert.Equal(t, context.DeadlineExceeded, storeErr.Cause)
	})

	t.Run("cancellation becomes StoreUnavailable", func(t *testing.T) {
		err := errs.WrapStoreUnavailable("orders.get", context.Canceled)

		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("business errors pass through unchanged", func(t *testing.T) {
		original := errs.NewConflictError("order is already claimed")

		err := errs.WrapStoreUnavailable("orders.claim", original)

		assert.Equal(t, original, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		require.NotErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("total"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewConflictError("claimed"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewPermissionDeniedError("not claimant"), errs.ErrPermissionDenied)
	require.ErrorIs(t, errs.NewStoreUnavailableError("op", errors.New("x")), errs.ErrStoreUnavailable)
}

func TestSanitizeNewlines(t *testing.T) {
	cause := errors.New("line one\nline two")
	err := errs.NewValueIsInvalidErrorWithCause("address", cause)

	assert.Contains(t, err.Error(), "line one line two")
	assert.NotContains(t, err.Error(), "\n")
}
