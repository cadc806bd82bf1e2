// Package command implements the write-side use cases: C3 (wallet
// locking), C4 (ledger posting), C5 (idempotency orchestration) and C6
// (the topup/bonus/spend flow engine).
package command

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/assettype"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/idempotency"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/ledgerentry"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/transaction"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/wallet"
	"github.com/LerianStudio/midaz-credits/internal/adapters/redis"
	"github.com/LerianStudio/midaz-credits/pkg/mlog"
)

// Transactor is C2, narrowed to the one method the use case layer
// depends on, so tests can swap mpostgres.Transactor for an in-memory
// stand-in without an open database connection.
type Transactor interface {
	Run(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// UseCase aggregates the repositories and infrastructure every write
// operation needs.
type UseCase struct {
	// WalletRepo provides an abstraction on top of the wallet data source.
	WalletRepo wallet.Repository

	// TransactionRepo provides an abstraction on top of the transaction data source.
	TransactionRepo transaction.Repository

	// LedgerEntryRepo provides an abstraction on top of the ledger entry data source.
	LedgerEntryRepo ledgerentry.Repository

	// AssetTypeRepo provides an abstraction on top of the asset type data source.
	AssetTypeRepo assettype.Repository

	// IdempotencyRepo is the durable, Postgres-backed idempotency store.
	IdempotencyRepo idempotency.Repository

	// RedisRepo is the fast-path idempotency cache.
	RedisRepo redis.Repository

	// Transactor runs a unit of work inside a single database transaction.
	Transactor Transactor

	// Logger is the structured logger every use case writes through.
	Logger mlog.Logger

	// IdempotencyTTL controls how long a claimed idempotency key and its
	// cached response remain valid.
	IdempotencyTTL time.Duration
}
