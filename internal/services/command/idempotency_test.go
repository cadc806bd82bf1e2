package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/midaz-credits/internal/adapters/redis"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

func newIdempotencyUseCase() *UseCase {
	return &UseCase{
		IdempotencyRepo: newFakeIdempotencyRepo(),
		RedisRepo:       redis.NewFakeRepository(),
		IdempotencyTTL:  time.Hour,
	}
}

func TestIdempotency_MissReturnsNil(t *testing.T) {
	uc := newIdempotencyUseCase()

	cached, err := uc.LookupIdempotency(context.Background(), "key-1", "/api/v1/transactions/topup")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestIdempotency_StoreThenRedisHit(t *testing.T) {
	uc := newIdempotencyUseCase()
	ctx := context.Background()
	path := "/api/v1/transactions/topup"

	err := uc.StoreIdempotency(ctx, "key-2", path, 201, []byte(`{"success":true}`))
	require.NoError(t, err)

	cached, err := uc.LookupIdempotency(ctx, "key-2", path)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 201, cached.Status)
	assert.Equal(t, `{"success":true}`, string(cached.Body))
}

func TestIdempotency_FallsBackToPostgresOnRedisMiss(t *testing.T) {
	uc := newIdempotencyUseCase()
	ctx := context.Background()
	path := "/api/v1/transactions/spend"

	// Simulate a write that only reached Postgres, as would happen after
	// a redis restart between the store call's two legs.
	stored, err := uc.IdempotencyRepo.Store(ctx, &mmodel.IdempotencyRecord{
		Key:            "key-3",
		RequestPath:    path,
		ResponseStatus: 201,
		ResponseBody:   []byte(`{"ok":true}`),
	})
	require.NoError(t, err)
	require.True(t, stored)

	cached, err := uc.LookupIdempotency(ctx, "key-3", path)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 201, cached.Status)
}

func TestIdempotency_NeverCachesServerErrors(t *testing.T) {
	uc := newIdempotencyUseCase()
	ctx := context.Background()
	path := "/api/v1/transactions/bonus"

	err := uc.StoreIdempotency(ctx, "key-4", path, 500, []byte(`{"success":false}`))
	require.NoError(t, err)

	cached, err := uc.LookupIdempotency(ctx, "key-4", path)
	require.NoError(t, err)
	assert.Nil(t, cached)
}
