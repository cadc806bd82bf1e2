package command

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// Lookup is C5's read side. It first attempts to claim internalKey with
// a SetNX: a request that wins the claim is the first to see this key
// within redis's TTL window and has nothing cached yet, so it falls
// through to the durable Postgres check below. A request that loses the
// claim reads the response the winner already cached; if that response
// hasn't been written yet (the winner is still mid-flight or crashed
// before writing it), it also falls through to Postgres, which is the
// ultimate arbiter (spec.md §4.4, §4.6). Returns nil with no error on a
// clean miss. Policy (spec.md §4.4) lives at the HTTP boundary
// (internal/adapters/http/in), which calls this before invoking a
// mutation handler and short-circuits on a hit.
func (uc *UseCase) LookupIdempotency(ctx context.Context, key, requestPath string) (*mmodel.CachedResponse, error) {
	internalKey := idempotencyInternalKey(requestPath, key)

	claimed, err := uc.RedisRepo.SetNX(ctx, internalKey, "", uc.IdempotencyTTL)
	if err == nil && !claimed {
		if cached, err := uc.RedisRepo.Get(ctx, internalKey); err == nil && cached != "" {
			var resp mmodel.CachedResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	rec, err := uc.IdempotencyRepo.Find(ctx, key, requestPath)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		return nil, nil
	}

	return &mmodel.CachedResponse{Status: rec.ResponseStatus, Body: rec.ResponseBody}, nil
}

// StoreIdempotency is C5's write side: a best-effort insert that leaves
// an existing (key, path) row untouched on conflict, and never caches a
// 5xx response so the client remains free to retry (spec.md §4.4, §7).
func (uc *UseCase) StoreIdempotency(ctx context.Context, key, requestPath string, status int, body []byte) error {
	if status >= 500 {
		return nil
	}

	rec := &mmodel.IdempotencyRecord{
		Key:            key,
		RequestPath:    requestPath,
		ResponseStatus: status,
		ResponseBody:   body,
		ExpiresAt:      time.Now().Add(uc.IdempotencyTTL),
	}

	stored, err := uc.IdempotencyRepo.Store(ctx, rec)
	if err != nil {
		return err
	}

	if !stored {
		return nil
	}

	payload, err := json.Marshal(mmodel.CachedResponse{Status: status, Body: body})
	if err != nil {
		return err
	}

	return uc.RedisRepo.Set(ctx, idempotencyInternalKey(requestPath, key), string(payload), uc.IdempotencyTTL)
}

func idempotencyInternalKey(requestPath, key string) string {
	return requestPath + "|" + key
}
