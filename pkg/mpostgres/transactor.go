package mpostgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transactor is C2, the transaction runner: it acquires a connection
// from the pool, opens a transaction, runs fn, and guarantees
// commit-or-rollback on every exit path. fn's return value is
// propagated on success; any error fn returns (or any panic) rolls the
// transaction back. No retry logic lives here — deadlock or
// serialization faults surface to the caller as-is (spec.md §4.1).
type Transactor struct {
	Pool *Connection
}

// Run executes fn inside a single database transaction.
func (t *Transactor) Run(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := t.Pool.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}

		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}

		err = tx.Commit(ctx)
	}()

	err = fn(tx)

	return err
}
