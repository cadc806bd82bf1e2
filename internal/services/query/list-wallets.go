package query

import (
	"context"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// ListWallets returns a page of wallets, optionally scoped by owner kind.
func (uc *UseCase) ListWallets(ctx context.Context, filter mmodel.Filter) ([]*mmodel.Wallet, error) {
	return uc.WalletRepo.FindAll(ctx, filter)
}
