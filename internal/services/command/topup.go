package command

import (
	"context"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// CreateTopup runs the topup flow: a system treasury wallet credits a
// user wallet.
func (uc *UseCase) CreateTopup(ctx context.Context, in mmodel.TopupInput, idempotencyKey string) (*mmodel.Transaction, error) {
	return uc.runFlow(ctx, flowInput{
		Kind:           mmodel.KindTopup,
		UserWalletID:   in.WalletID,
		SystemWalletID: in.SystemWalletID,
		Amount:         in.Amount,
		IdempotencyKey: idempotencyKey,
		CorrelatorKey:  "referenceId",
		Correlator:     in.ReferenceID,
		Description:    in.Description,
		Metadata:       in.Metadata,
	})
}
