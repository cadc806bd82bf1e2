// Package wallet implements the C1 persistence adapter for wallets and
// the C3 canonical-order row locker, grounded on the teacher's
// account.postgresql.go shape.
package wallet

import (
	"context"
	"database/sql"
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

// Repository provides persistence operations for wallets.
type Repository interface {
	Find(ctx context.Context, id uuid.UUID) (*mmodel.Wallet, error)
	FindAll(ctx context.Context, filter mmodel.Filter) ([]*mmodel.Wallet, error)
	Create(ctx context.Context, w *mmodel.Wallet) (*mmodel.Wallet, error)

	// LockTwo locks the two wallet rows identified by idA and idB inside
	// tx, always acquiring them in ascending-ID order regardless of the
	// order idA/idB are passed in, so two concurrent flows touching the
	// same wallet pair can never deadlock (spec.md §4.4).
	LockTwo(ctx context.Context, tx pgx.Tx, idA, idB uuid.UUID) (map[uuid.UUID]*mmodel.Wallet, error)

	// UpdateBalance persists w.Balance inside tx. The caller must hold the
	// row lock acquired by LockTwo.
	UpdateBalance(ctx context.Context, tx pgx.Tx, w *mmodel.Wallet) error
}

// PostgreSQLRepository is a Postgres-backed Repository implementation.
type PostgreSQLRepository struct {
	conn      *mpostgres.Connection
	tableName string
}

// NewPostgreSQLRepository returns a new Repository over conn.
func NewPostgreSQLRepository(conn *mpostgres.Connection) *PostgreSQLRepository {
	return &PostgreSQLRepository{conn: conn, tableName: "wallets"}
}

func scanWallet(row interface{ Scan(dest ...any) error }) (*mmodel.Wallet, error) {
	var w mmodel.Wallet

	if err := row.Scan(&w.ID, &w.OwnerID, &w.OwnerKind, &w.AssetTypeID, &w.Balance, &w.IsActive, &w.Name, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}

	return &w, nil
}

const walletColumns = "id, owner_id, owner_kind, asset_type_id, balance, is_active, name, created_at, updated_at"

// Find retrieves a wallet by ID, outside of any transaction.
func (r *PostgreSQLRepository) Find(ctx context.Context, id uuid.UUID) (*mmodel.Wallet, error) {
	row := r.conn.Pool.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = $1`, id)

	w, err := scanWallet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkg.ValidateBusinessError(constant.ErrWalletNotFound, reflect.TypeOf(mmodel.Wallet{}).Name())
		}

		return nil, err
	}

	return w, nil
}

// FindAll lists wallets, optionally scoped by owner kind, paginated.
func (r *PostgreSQLRepository) FindAll(ctx context.Context, filter mmodel.Filter) ([]*mmodel.Wallet, error) {
	sel := squirrel.Select(walletColumns).From(r.tableName)

	if filter.OwnerKind != "" {
		sel = sel.Where(squirrel.Eq{"owner_kind": filter.OwnerKind})
	}

	sel = sel.OrderBy("created_at DESC").
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

	var out []*mmodel.Wallet

	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, w)
	}

	return out, rows.Err()
}

// Create inserts a new wallet. No HTTP route and nothing in bootstrap
// calls it; spec.md §6 exposes no wallet creation endpoint.
func (r *PostgreSQLRepository) Create(ctx context.Context, w *mmodel.Wallet) (*mmodel.Wallet, error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	row := r.conn.Pool.QueryRow(ctx,
		`INSERT INTO wallets (id, owner_id, owner_kind, asset_type_id, balance, is_active, name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+walletColumns,
		w.ID, w.OwnerID, w.OwnerKind, w.AssetTypeID, w.Balance, w.IsActive, w.Name)

	return scanWallet(row)
}

// LockTwo acquires SELECT ... FOR UPDATE on both wallet rows within a
// single statement ordered by id, so every caller -- regardless of which
// wallet it calls "source" and which it calls "destination" -- takes the
// locks in the same global order.
func (r *PostgreSQLRepository) LockTwo(ctx context.Context, tx pgx.Tx, idA, idB uuid.UUID) (map[uuid.UUID]*mmodel.Wallet, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE id IN ($1, $2) ORDER BY id FOR UPDATE`, idA, idB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*mmodel.Wallet, 2)

	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}

		out[w.ID] = w
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if _, ok := out[idA]; !ok {
		return nil, pkg.ValidateBusinessError(constant.ErrWalletNotFound, reflect.TypeOf(mmodel.Wallet{}).Name())
	}

	if _, ok := out[idB]; !ok {
		return nil, pkg.ValidateBusinessError(constant.ErrWalletNotFound, reflect.TypeOf(mmodel.Wallet{}).Name())
	}

	return out, nil
}

// UpdateBalance writes the new balance for a row already locked by
// LockTwo within the same transaction. A check_violation (sqlstate
// 23514) means the write would have driven the balance negative -- the
// last line of defense spec.md §4.3 describes -- and is translated to
// pkg.ValidateBusinessError instead of surfacing as a raw pgx error.
func (r *PostgreSQLRepository) UpdateBalance(ctx context.Context, tx pgx.Tx, w *mmodel.Wallet) error {
	_, err := tx.Exec(ctx, `UPDATE wallets SET balance = $1, updated_at = now() WHERE id = $2`, w.Balance, w.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return pkg.ValidateBusinessError(constant.ErrConstraintViolation, reflect.TypeOf(mmodel.Wallet{}).Name())
		}

		return err
	}

	return nil
}
