package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// GetWalletBalance retrieves the narrow balance view for a wallet,
// deliberately omitting owner/asset metadata.
func (uc *UseCase) GetWalletBalance(ctx context.Context, id uuid.UUID) (*mmodel.BalanceView, error) {
	w, err := uc.WalletRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	return &mmodel.BalanceView{
		WalletID:  w.ID,
		Balance:   w.Balance,
		IsActive:  w.IsActive,
		UpdatedAt: w.UpdatedAt,
	}, nil
}
