// Package transaction implements the C1 persistence adapter for
// transactions, including the idempotency_key unique constraint that is
// the ultimate arbiter of request identity (spec.md §4.6).
package transaction

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/LerianStudio/midaz-credits/pkg"
	"github.com/LerianStudio/midaz-credits/pkg/constant"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
)

// Repository provides persistence operations for transactions.
type Repository interface {
	Find(ctx context.Context, id uuid.UUID) (*mmodel.Transaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*mmodel.Transaction, error)
	// FindByIdempotencyKeyTx is the same lookup run on an open transaction,
	// used by the flow engine's step-1 duplicate check (spec.md §4.5) so it
	// reads through the same connection that is about to take wallet locks.
	FindByIdempotencyKeyTx(ctx context.Context, tx pgx.Tx, key string) (*mmodel.Transaction, error)
	FindAllByWallet(ctx context.Context, walletID uuid.UUID, filter mmodel.Filter) ([]*mmodel.Transaction, error)

	// Insert writes a new transaction row inside tx. A duplicate
	// idempotency_key surfaces as pkg.EntityConflictError so the flow
	// engine can fall back to replaying the winning row.
	Insert(ctx context.Context, tx pgx.Tx, t *mmodel.Transaction) error

	// Complete flips a transaction's status to completed inside tx.
	Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// PostgreSQLRepository is a Postgres-backed Repository implementation.
type PostgreSQLRepository struct {
	conn      *mpostgres.Connection
	tableName string
}

// NewPostgreSQLRepository returns a new Repository over conn.
func NewPostgreSQLRepository(conn *mpostgres.Connection) *PostgreSQLRepository {
	return &PostgreSQLRepository{conn: conn, tableName: "transactions"}
}

const transactionColumns = `id, kind, status, user_wallet_id, system_wallet_id, amount,
	reference_id, idempotency_key, description, metadata, created_at, updated_at`

func scanTransaction(row interface{ Scan(dest ...any) error }) (*mmodel.Transaction, error) {
	var (
		t        mmodel.Transaction
		metadata []byte
	)

	if err := row.Scan(&t.ID, &t.Kind, &t.Status, &t.UserWalletID, &t.SystemWalletID, &t.Amount,
		&t.ReferenceID, &t.IdempotencyKey, &t.Description, &metadata, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
			return nil, err
		}
	}

	return &t, nil
}

// Find retrieves a transaction by ID.
func (r *PostgreSQLRepository) Find(ctx context.Context, id uuid.UUID) (*mmodel.Transaction, error) {
	row := r.conn.Pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkg.ValidateBusinessError(constant.ErrTransactionNotFound, reflect.TypeOf(mmodel.Transaction{}).Name())
		}

		return nil, err
	}

	return t, nil
}

// FindByIdempotencyKey retrieves the transaction row that won the unique
// constraint race for key, or nil with no error when none exists.
func (r *PostgreSQLRepository) FindByIdempotencyKey(ctx context.Context, key string) (*mmodel.Transaction, error) {
	row := r.conn.Pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE idempotency_key = $1`, key)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return t, nil
}

// FindByIdempotencyKeyTx is FindByIdempotencyKey run against an open
// transaction instead of the pool.
func (r *PostgreSQLRepository) FindByIdempotencyKeyTx(ctx context.Context, tx pgx.Tx, key string) (*mmodel.Transaction, error) {
	row := tx.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE idempotency_key = $1`, key)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return t, nil
}

// FindAllByWallet lists transactions touching walletID as either leg,
// most recent first, paginated.
func (r *PostgreSQLRepository) FindAllByWallet(ctx context.Context, walletID uuid.UUID, filter mmodel.Filter) ([]*mmodel.Transaction, error) {
	sel := squirrel.Select(transactionColumns).
		From(r.tableName).
		Where(squirrel.Or{
			squirrel.Eq{"user_wallet_id": walletID},
			squirrel.Eq{"system_wallet_id": walletID},
		}).
		OrderBy("created_at DESC").
		Limit(uint64(filter.SafeLimit(100))).
		Offset(uint64((filter.SafePage() - 1) * filter.SafeLimit(100))).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*mmodel.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, rows.Err()
}

// Insert writes t inside tx, returning pkg.EntityConflictError on a
// duplicate idempotency_key (unique_violation, sqlstate 23505).
func (r *PostgreSQLRepository) Insert(ctx context.Context, tx pgx.Tx, t *mmodel.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	metadata, err := json.Marshal(t.Metadata)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, kind, status, user_wallet_id, system_wallet_id, amount,
			reference_id, idempotency_key, description, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.Kind, t.Status, t.UserWalletID, t.SystemWalletID, t.Amount,
		t.ReferenceID, t.IdempotencyKey, t.Description, metadata)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return pkg.ValidateBusinessError(constant.ErrIdempotencyKeyConflict, reflect.TypeOf(mmodel.Transaction{}).Name())
		}

		return err
	}

	return nil
}

// Complete marks a pending transaction completed inside tx.
func (r *PostgreSQLRepository) Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE transactions SET status = $1, updated_at = now() WHERE id = $2`, mmodel.StatusCompleted, id)
	return err
}
