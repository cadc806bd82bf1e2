// Package constant holds the stable sentinel errors the ledger's
// business rules raise. Each one carries a fixed code used on the wire;
// renaming the Go identifier never changes the code a client sees.
package constant

import "errors"

// Sentinel business errors. Compared with errors.Is, never by value.
var (
	ErrEntityNotFound           = errors.New("ENTITY_NOT_FOUND")
	ErrWalletNotFound           = errors.New("WALLET_NOT_FOUND")
	ErrTransactionNotFound      = errors.New("TRANSACTION_NOT_FOUND")
	ErrAssetTypeNotFound        = errors.New("ASSET_TYPE_NOT_FOUND")
	ErrInactiveWallet           = errors.New("INACTIVE_WALLET")
	ErrAssetTypeMismatch        = errors.New("ASSET_TYPE_MISMATCH")
	ErrSameWallet               = errors.New("SAME_WALLET")
	ErrInsufficientFunds        = errors.New("INSUFFICIENT_FUNDS")
	ErrInvalidAmount            = errors.New("INVALID_AMOUNT")
	ErrMissingFieldsInRequest   = errors.New("MISSING_FIELDS_IN_REQUEST")
	ErrMissingIdempotencyKey    = errors.New("MISSING_IDEMPOTENCY_KEY")
	ErrIdempotencyKeyConflict   = errors.New("IDEMPOTENCY_KEY_CONFLICT")
	ErrConstraintViolation      = errors.New("CONSTRAINT_VIOLATION")
	ErrConflict                 = errors.New("CONFLICT")
	ErrRateLimited              = errors.New("RATE_LIMIT_EXCEEDED")
	ErrInternal                 = errors.New("INTERNAL_ERROR")
)

// Code is the stable wire code for the taxonomy kind err maps to. Unknown
// errors map to INTERNAL_ERROR, matching the operational/non-operational
// split in spec.md §7.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrWalletNotFound), errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrAssetTypeNotFound), errors.Is(err, ErrEntityNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInactiveWallet), errors.Is(err, ErrAssetTypeMismatch),
		errors.Is(err, ErrSameWallet), errors.Is(err, ErrConflict),
		errors.Is(err, ErrIdempotencyKeyConflict):
		return "CONFLICT"
	case errors.Is(err, ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	case errors.Is(err, ErrConstraintViolation):
		return "CONSTRAINT_VIOLATION"
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrMissingFieldsInRequest),
		errors.Is(err, ErrMissingIdempotencyKey):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMIT_EXCEEDED"
	default:
		return "INTERNAL_ERROR"
	}
}
