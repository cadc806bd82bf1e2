package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// GetWallet retrieves a single wallet by ID.
func (uc *UseCase) GetWallet(ctx context.Context, id uuid.UUID) (*mmodel.Wallet, error) {
	return uc.WalletRepo.Find(ctx, id)
}
