// Package mredis holds the connection wrapper used for the request-boundary
// idempotency cache (spec.md §4.6's fast path ahead of the Postgres
// constraint).
package mredis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/LerianStudio/midaz-credits/pkg/mlog"
)

// Connection is a hub which deals with redis connections.
type Connection struct {
	Addr      string
	Password  string
	DB        int
	Client    *redis.Client
	Connected bool
	Logger    mlog.Logger
}

// Connect opens and pings the redis connection.
func (rc *Connection) Connect(ctx context.Context) error {
	rc.Logger.Info("Connecting to redis...")

	rdb := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rc.Logger.Errorf("redis ping failed: %v", err)
		return err
	}

	rc.Logger.Info("Connected to redis")

	rc.Connected = true
	rc.Client = rdb

	return nil
}

// GetClient returns the underlying client, connecting lazily if necessary.
func (rc *Connection) GetClient(ctx context.Context) (*redis.Client, error) {
	if rc.Client == nil {
		if err := rc.Connect(ctx); err != nil {
			return nil, err
		}
	}

	return rc.Client, nil
}
