// Package query implements the read-only use cases (C7): point lookups
// and paginated history for wallets, transactions, and asset types. No
// locking, no cross-table writes.
package query

import (
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/assettype"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/ledgerentry"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/transaction"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/wallet"
	"github.com/LerianStudio/midaz-credits/pkg/mlog"
)

// UseCase aggregates the repositories every read operation needs.
type UseCase struct {
	// WalletRepo provides an abstraction on top of the wallet data source.
	WalletRepo wallet.Repository

	// TransactionRepo provides an abstraction on top of the transaction data source.
	TransactionRepo transaction.Repository

	// LedgerEntryRepo provides an abstraction on top of the ledger entry data source.
	LedgerEntryRepo ledgerentry.Repository

	// AssetTypeRepo provides an abstraction on top of the asset type data source.
	AssetTypeRepo assettype.Repository

	// Logger is the structured logger every use case writes through.
	Logger mlog.Logger
}
