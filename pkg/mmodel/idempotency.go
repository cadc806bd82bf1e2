package mmodel

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord is a cached response envelope keyed by (key, path).
// It is a best-effort accelerator; the Transaction.idempotency_key
// unique constraint is the durable source of truth (spec.md §4.4).
type IdempotencyRecord struct {
	ID             uuid.UUID `json:"id"`
	Key            string    `json:"key"`
	RequestPath    string    `json:"requestPath"`
	ResponseStatus int       `json:"responseStatus"`
	ResponseBody   []byte    `json:"responseBody"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// CachedResponse is what the idempotency store hands back to the
// request boundary on a replay hit.
type CachedResponse struct {
	Status int
	Body   []byte
}
