package command

import (
	"context"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// CreateSpend runs the spend flow: a user wallet debits into a system
// revenue wallet.
func (uc *UseCase) CreateSpend(ctx context.Context, in mmodel.SpendInput, idempotencyKey string) (*mmodel.Transaction, error) {
	return uc.runFlow(ctx, flowInput{
		Kind:           mmodel.KindSpend,
		UserWalletID:   in.WalletID,
		SystemWalletID: in.SystemWalletID,
		Amount:         in.Amount,
		IdempotencyKey: idempotencyKey,
		CorrelatorKey:  "serviceId",
		Correlator:     in.ServiceID,
		Description:    in.Description,
		Metadata:       in.Metadata,
	})
}
