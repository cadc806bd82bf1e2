package command

import (
	"context"
	"errors"
	"reflect"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/midaz-credits/pkg"
	"github.com/LerianStudio/midaz-credits/pkg/constant"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
	"github.com/LerianStudio/midaz-credits/pkg/mpointers"
)

// flowInput is the template's normalized view of a topup, bonus, or
// spend request. Correlator holds whichever field the flow's policy
// calls its external correlator (referenceId, reason, serviceId); per
// the Open Question decision in DESIGN.md it is written into both
// Transaction.ReferenceID and Transaction.Metadata[CorrelatorKey].
type flowInput struct {
	Kind           mmodel.Kind
	UserWalletID   uuid.UUID
	SystemWalletID uuid.UUID
	Amount         decimal.Decimal
	IdempotencyKey string
	CorrelatorKey  string
	Correlator     string
	Description    string
	Metadata       mmodel.Metadata
}

// sourceTarget applies each flow's policy (spec.md §4.5 table): topup and
// bonus debit a system wallet and credit the user; spend debits the user
// and credits a system wallet.
func sourceTarget(in flowInput) (sourceID, targetID uuid.UUID) {
	if in.Kind == mmodel.KindSpend {
		return in.UserWalletID, in.SystemWalletID
	}

	return in.SystemWalletID, in.UserWalletID
}

// runFlow is C6: the eight-step template shared by topup, bonus, and
// spend, executed inside a single C2 transaction.
func (uc *UseCase) runFlow(ctx context.Context, in flowInput) (*mmodel.Transaction, error) {
	if in.IdempotencyKey == "" {
		return nil, pkg.ValidateBusinessError(constant.ErrMissingIdempotencyKey, "Transaction")
	}

	if in.Amount.Sign() <= 0 {
		return nil, pkg.ValidateBusinessError(constant.ErrInvalidAmount, "Transaction")
	}

	var result *mmodel.Transaction

	err := uc.Transactor.Run(ctx, func(tx pgx.Tx) error {
		// Step 1: duplicate check by idempotency key.
		existing, err := uc.TransactionRepo.FindByIdempotencyKeyTx(ctx, tx, in.IdempotencyKey)
		if err != nil {
			return err
		}

		if existing != nil {
			result = existing
			return nil
		}

		// Step 2: lock both wallet rows in canonical order.
		wallets, err := uc.LockWallets(ctx, tx, in.UserWalletID, in.SystemWalletID)
		if err != nil {
			return err
		}

		// Step 3: identify source/target per the flow's policy.
		sourceID, targetID := sourceTarget(in)
		source, target := wallets[sourceID], wallets[targetID]

		// Step 4: assertions.
		if err := assertTransferable(source, target, in.Amount); err != nil {
			return err
		}

		// Step 5: insert the pending transaction row.
		metadata := mmodel.Metadata{}
		for k, v := range in.Metadata {
			metadata[k] = v
		}

		if in.CorrelatorKey != "" {
			metadata[in.CorrelatorKey] = in.Correlator
		}

		txn := &mmodel.Transaction{
			Kind:           in.Kind,
			Status:         mmodel.StatusPending,
			UserWalletID:   in.UserWalletID,
			SystemWalletID: in.SystemWalletID,
			Amount:         in.Amount,
			ReferenceID:    mpointers.String(in.Correlator),
			IdempotencyKey: mpointers.String(in.IdempotencyKey),
			Description:    in.Description,
			Metadata:       metadata,
		}

		if err := uc.TransactionRepo.Insert(ctx, tx, txn); err != nil {
			// A conflict here means another request committed first under
			// the same idempotency key; the outer error handling below
			// re-reads its row once this (now-aborted) tx rolls back.
			return err
		}

		// Step 6: debit source, then credit target.
		debitEntry, err := uc.ApplyLedgerEntry(ctx, tx, source, mmodel.SideDebit, in.Amount, txn.ID)
		if err != nil {
			return err
		}

		creditEntry, err := uc.ApplyLedgerEntry(ctx, tx, target, mmodel.SideCredit, in.Amount, txn.ID)
		if err != nil {
			return err
		}

		// Step 7: promote to completed.
		if err := uc.TransactionRepo.Complete(ctx, tx, txn.ID); err != nil {
			return err
		}

		txn.Status = mmodel.StatusCompleted
		txn.Entries = []mmodel.LedgerEntry{*debitEntry, *creditEntry}
		result = txn

		return nil
	})
	if err != nil {
		if conflict, ok := err.(pkg.EntityConflictError); ok && errors.Is(conflict.Err, constant.ErrIdempotencyKeyConflict) {
			result, err = uc.TransactionRepo.FindByIdempotencyKey(ctx, in.IdempotencyKey)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if result != nil && len(result.Entries) == 0 {
		entries, err := uc.LedgerEntryRepo.FindAllByTransaction(ctx, result.ID)
		if err != nil {
			return nil, err
		}

		result.Entries = entries
	}

	return result, nil
}

// assertTransferable runs step 4's checks in this order -- both wallets
// exist, both are active, same asset type, distinct wallets, enough
// source balance -- each raising a specific fault. The amount > 0 check
// runs earlier, in runFlow, before the transaction opens.
func assertTransferable(source, target *mmodel.Wallet, amount decimal.Decimal) error {
	entity := reflect.TypeOf(mmodel.Wallet{}).Name()

	if source == nil || target == nil {
		return pkg.ValidateBusinessError(constant.ErrWalletNotFound, entity)
	}

	if !source.IsActive {
		return pkg.ValidateBusinessError(constant.ErrInactiveWallet, entity, source.ID)
	}

	if !target.IsActive {
		return pkg.ValidateBusinessError(constant.ErrInactiveWallet, entity, target.ID)
	}

	if source.AssetTypeID != target.AssetTypeID {
		return pkg.ValidateBusinessError(constant.ErrAssetTypeMismatch, entity)
	}

	if source.ID == target.ID {
		return pkg.ValidateBusinessError(constant.ErrSameWallet, entity)
	}

	if source.Balance.LessThan(amount) {
		return pkg.InsufficientFundsError{
			EntityType: entity,
			Message:    "The source wallet does not hold enough balance to cover this amount.",
			Available:  source.Balance.String(),
			Required:   amount.String(),
		}
	}

	return nil
}
