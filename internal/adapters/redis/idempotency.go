// Package redis implements the fast-path idempotency cache (spec.md
// §4.6) in front of the Postgres unique constraint that is the
// ultimate arbiter of request identity.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/LerianStudio/midaz-credits/pkg/mredis"
)

// Repository provides the subset of redis operations the idempotency
// flow needs. SetNX is the fast-path claim; Get/Set back the cached
// response replay once a request has completed.
type Repository interface {
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisRepository is the go-redis-backed Repository implementation.
type RedisRepository struct {
	conn *mredis.Connection
}

// NewRedisRepository builds a RedisRepository over an open connection.
func NewRedisRepository(conn *mredis.Connection) *RedisRepository {
	return &RedisRepository{conn: conn}
}

// SetNX claims key if it does not already exist.
func (r *RedisRepository) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	client, err := r.conn.GetClient(ctx)
	if err != nil {
		return false, err
	}

	return client.SetNX(ctx, key, value, ttl).Result()
}

// Get reads key, returning "" with no error when it is absent.
func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	client, err := r.conn.GetClient(ctx)
	if err != nil {
		return "", err
	}

	val, err := client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}

	return val, err
}

// Set overwrites key and resets its expiry to ttl.
func (r *RedisRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	client, err := r.conn.GetClient(ctx)
	if err != nil {
		return err
	}

	return client.Set(ctx, key, value, ttl).Err()
}
