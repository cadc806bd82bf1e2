package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// ListWalletTransactions returns a page of a wallet's transaction
// history, most recent first. Verifies the wallet exists so an unknown
// id surfaces as 404 rather than an empty page.
func (uc *UseCase) ListWalletTransactions(ctx context.Context, walletID uuid.UUID, filter mmodel.Filter) ([]*mmodel.Transaction, error) {
	if _, err := uc.WalletRepo.Find(ctx, walletID); err != nil {
		return nil, err
	}

	return uc.TransactionRepo.FindAllByWallet(ctx, walletID, filter)
}
