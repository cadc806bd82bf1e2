package command

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// LockWallets is C3: it acquires exclusive locks on both wallet rows in
// the canonical order the store itself imposes, regardless of the order
// idA and idB are supplied in. Callers never need to sort their own
// arguments -- the ORDER BY id inside the repository's single locking
// statement is what makes two concurrent flows sharing a wallet
// impossible to deadlock.
func (uc *UseCase) LockWallets(ctx context.Context, tx pgx.Tx, idA, idB uuid.UUID) (map[uuid.UUID]*mmodel.Wallet, error) {
	return uc.WalletRepo.LockTwo(ctx, tx, idA, idB)
}
