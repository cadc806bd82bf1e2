package command

import (
	"context"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// CreateBonus runs the bonus flow: a system bonus pool credits a user
// wallet with no corresponding external payment.
func (uc *UseCase) CreateBonus(ctx context.Context, in mmodel.BonusInput, idempotencyKey string) (*mmodel.Transaction, error) {
	return uc.runFlow(ctx, flowInput{
		Kind:           mmodel.KindBonus,
		UserWalletID:   in.WalletID,
		SystemWalletID: in.SystemWalletID,
		Amount:         in.Amount,
		IdempotencyKey: idempotencyKey,
		CorrelatorKey:  "reason",
		Correlator:     in.Reason,
		Description:    in.Description,
		Metadata:       in.Metadata,
	})
}
