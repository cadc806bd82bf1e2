package command

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// ApplyLedgerEntry is C4: it takes a locked wallet snapshot, computes the
// new balance in-memory, persists it, and appends the matching ledger
// entry -- all inside the caller's open transaction. before is read from
// the in-memory snapshot, never re-read from the store: the exclusive
// row lock guarantees nothing else can have changed it since LockWallets
// returned.
func (uc *UseCase) ApplyLedgerEntry(ctx context.Context, tx pgx.Tx, wallet *mmodel.Wallet, side mmodel.Side, amount decimal.Decimal, transactionID uuid.UUID) (*mmodel.LedgerEntry, error) {
	before := wallet.Balance

	var after decimal.Decimal
	if side == mmodel.SideCredit {
		after = before.Add(amount)
	} else {
		after = before.Sub(amount)
	}

	wallet.Balance = after

	if err := uc.WalletRepo.UpdateBalance(ctx, tx, wallet); err != nil {
		return nil, err
	}

	entry := &mmodel.LedgerEntry{
		TransactionID: transactionID,
		WalletID:      wallet.ID,
		Side:          side,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
	}

	if err := uc.LedgerEntryRepo.Insert(ctx, tx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}
