// Package ledgerentry implements the C1 persistence adapter for the
// append-only ledger entries that back every balance mutation (C4).
package ledgerentry

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
)

// Repository provides persistence operations for ledger entries.
type Repository interface {
	// Insert writes an immutable debit or credit row inside tx. Ledger
	// entries are never updated or deleted once written.
	Insert(ctx context.Context, tx pgx.Tx, e *mmodel.LedgerEntry) error
	FindAllByTransaction(ctx context.Context, transactionID uuid.UUID) ([]mmodel.LedgerEntry, error)
}

// PostgreSQLRepository is a Postgres-backed Repository implementation.
type PostgreSQLRepository struct {
	conn *mpostgres.Connection
}

// NewPostgreSQLRepository returns a new Repository over conn.
func NewPostgreSQLRepository(conn *mpostgres.Connection) *PostgreSQLRepository {
	return &PostgreSQLRepository{conn: conn}
}

const ledgerEntryColumns = "id, transaction_id, wallet_id, side, amount, balance_before, balance_after, created_at"

func scanLedgerEntry(row interface{ Scan(dest ...any) error }) (mmodel.LedgerEntry, error) {
	var e mmodel.LedgerEntry

	err := row.Scan(&e.ID, &e.TransactionID, &e.WalletID, &e.Side, &e.Amount, &e.BalanceBefore, &e.BalanceAfter, &e.CreatedAt)

	return e, err
}

// Insert writes a single ledger entry inside tx.
func (r *PostgreSQLRepository) Insert(ctx context.Context, tx pgx.Tx, e *mmodel.LedgerEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, transaction_id, wallet_id, side, amount, balance_before, balance_after)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.TransactionID, e.WalletID, e.Side, e.Amount, e.BalanceBefore, e.BalanceAfter)

	return err
}

// FindAllByTransaction returns the (always two) entries belonging to a
// transaction, oldest first.
func (r *PostgreSQLRepository) FindAllByTransaction(ctx context.Context, transactionID uuid.UUID) ([]mmodel.LedgerEntry, error) {
	rows, err := r.conn.Pool.Query(ctx,
		`SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE transaction_id = $1 ORDER BY created_at ASC`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []mmodel.LedgerEntry

	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, rows.Err()
}
