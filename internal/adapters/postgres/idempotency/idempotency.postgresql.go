// Package idempotency implements the durable side of the idempotency
// cache: the Postgres row that survives a redis restart and settles any
// race the SetNX fast path could not (spec.md §4.6, Open Question 2).
package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
)

// Repository provides persistence operations for cached idempotent
// responses.
type Repository interface {
	Find(ctx context.Context, key, requestPath string) (*mmodel.IdempotencyRecord, error)
	// Store writes the cached response, returning (false, nil) instead of
	// an error when a concurrent request already won the same key.
	Store(ctx context.Context, rec *mmodel.IdempotencyRecord) (bool, error)
}

// PostgreSQLRepository is a Postgres-backed Repository implementation.
type PostgreSQLRepository struct {
	conn *mpostgres.Connection
}

// NewPostgreSQLRepository returns a new Repository over conn.
func NewPostgreSQLRepository(conn *mpostgres.Connection) *PostgreSQLRepository {
	return &PostgreSQLRepository{conn: conn}
}

// Find looks up a still-valid cached response for key+requestPath.
func (r *PostgreSQLRepository) Find(ctx context.Context, key, requestPath string) (*mmodel.IdempotencyRecord, error) {
	row := r.conn.Pool.QueryRow(ctx,
		`SELECT id, key, request_path, response_status, response_body, created_at, expires_at
		 FROM idempotency_keys WHERE key = $1 AND request_path = $2 AND expires_at > now()`,
		key, requestPath)

	var rec mmodel.IdempotencyRecord
	if err := row.Scan(&rec.ID, &rec.Key, &rec.RequestPath, &rec.ResponseStatus, &rec.ResponseBody, &rec.CreatedAt, &rec.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &rec, nil
}

// Store persists rec. On a unique_violation (another request already
// wrote this key) it returns (false, nil) rather than an error, since
// losing that race is the expected, idempotent outcome.
func (r *PostgreSQLRepository) Store(ctx context.Context, rec *mmodel.IdempotencyRecord) (bool, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	if rec.ExpiresAt.IsZero() {
		rec.ExpiresAt = time.Now().Add(24 * time.Hour)
	}

	_, err := r.conn.Pool.Exec(ctx,
		`INSERT INTO idempotency_keys (id, key, request_path, response_status, response_body, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Key, rec.RequestPath, rec.ResponseStatus, rec.ResponseBody, rec.ExpiresAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
