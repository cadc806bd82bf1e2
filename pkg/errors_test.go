package pkg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/midaz-credits/pkg/constant"
)

func TestValidateBusinessError_MapsKnownSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want any
	}{
		{"wallet not found", constant.ErrWalletNotFound, EntityNotFoundError{}},
		{"transaction not found", constant.ErrTransactionNotFound, EntityNotFoundError{}},
		{"inactive wallet", constant.ErrInactiveWallet, EntityConflictError{}},
		{"asset type mismatch", constant.ErrAssetTypeMismatch, EntityConflictError{}},
		{"same wallet", constant.ErrSameWallet, EntityConflictError{}},
		{"idempotency conflict", constant.ErrIdempotencyKeyConflict, EntityConflictError{}},
		{"invalid amount", constant.ErrInvalidAmount, ValidationError{}},
		{"missing idempotency key", constant.ErrMissingIdempotencyKey, ValidationError{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateBusinessError(tc.err, "Wallet")
			assert.IsType(t, tc.want, got)

			unwrapped, ok := got.(interface{ Unwrap() error })
			require.True(t, ok)
			assert.ErrorIs(t, unwrapped.Unwrap(), tc.err)
		})
	}
}

func TestValidateBusinessError_PassesThroughUnknownErrors(t *testing.T) {
	unknown := assert.AnError

	got := ValidateBusinessError(unknown, "Wallet")

	assert.Equal(t, unknown, got)
}

func TestValidateInternalError_WrapsWithGenericMessage(t *testing.T) {
	cause := assert.AnError

	got := ValidateInternalError(cause, "Wallet")

	var internal InternalServerError
	require.ErrorAs(t, got, &internal)
	assert.NotContains(t, internal.Message, cause.Error(), "the client-facing message must never leak the internal cause")
	assert.ErrorIs(t, internal.Unwrap(), cause)
}

func TestInsufficientFundsError_CarriesAmounts(t *testing.T) {
	err := InsufficientFundsError{
		EntityType: "Wallet",
		Message:    "not enough balance",
		Available:  "50",
		Required:   "60",
	}

	assert.Equal(t, "not enough balance", err.Error())
	assert.Equal(t, "50", err.Available)
	assert.Equal(t, "60", err.Required)
}

func TestContextWithRequestID_RoundTrips(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
}

func TestRequestIDFromContext_EmptyWhenUnset(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
