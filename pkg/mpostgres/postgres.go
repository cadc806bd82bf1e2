// Package mpostgres owns the single Postgres connection pool the
// service holds for its whole lifetime (the only long-lived process
// state besides the Redis client, per spec.md §9) and the generic
// "run inside one transaction" helper every mutation flow is built on.
package mpostgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config carries the connection parameters named in spec.md §6.
type Config struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	PoolMin         int32
	PoolMax         int32
	AcquireTimeout  time.Duration
	MaxConnIdleTime time.Duration
	MigrationsPath  string
}

// DSN builds the libpq connection string for Config.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Name)
}

// Connection is a hub around a pgxpool.Pool. All of C1-C7 reach the
// database exclusively through it.
type Connection struct {
	Pool   *pgxpool.Pool
	cfg    Config
}

// Connect opens the pool, applies pending migrations, and pings.
func Connect(ctx context.Context, cfg Config) (*Connection, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	poolCfg.MinConns = cfg.PoolMin
	poolCfg.MaxConns = cfg.PoolMax

	if cfg.AcquireTimeout > 0 {
		poolCfg.HealthCheckPeriod = cfg.AcquireTimeout
	}

	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	conn := &Connection{Pool: pool, cfg: cfg}

	if cfg.MigrationsPath != "" {
		if err := conn.runMigrations(); err != nil {
			pool.Close()
			return nil, err
		}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return conn, nil
}

// runMigrations applies every migration under cfg.MigrationsPath,
// recording the applied version in schema_migrations. The migration
// runner itself is an external collaborator per spec.md §1; this just
// invokes it at boot the way the teacher's PostgresConnection.Connect
// does.
func (c *Connection) runMigrations() error {
	sourceURL := "file://" + c.cfg.MigrationsPath

	m, err := migrate.New(sourceURL, "pgx5://"+c.cfg.DSN()[len("postgres://"):])
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close drains and closes the pool.
func (c *Connection) Close() {
	c.Pool.Close()
}
