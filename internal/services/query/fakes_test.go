package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/LerianStudio/midaz-credits/pkg"
	"github.com/LerianStudio/midaz-credits/pkg/constant"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

type fakeWalletRepo struct {
	wallets map[uuid.UUID]*mmodel.Wallet
}

func (r *fakeWalletRepo) Find(_ context.Context, id uuid.UUID) (*mmodel.Wallet, error) {
	w, ok := r.wallets[id]
	if !ok {
		return nil, pkg.ValidateBusinessError(constant.ErrWalletNotFound, "Wallet")
	}

	return w, nil
}

func (r *fakeWalletRepo) FindAll(context.Context, mmodel.Filter) ([]*mmodel.Wallet, error) {
	out := make([]*mmodel.Wallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		out = append(out, w)
	}

	return out, nil
}

func (r *fakeWalletRepo) Create(_ context.Context, w *mmodel.Wallet) (*mmodel.Wallet, error) {
	r.wallets[w.ID] = w
	return w, nil
}

func (r *fakeWalletRepo) LockTwo(context.Context, pgx.Tx, uuid.UUID, uuid.UUID) (map[uuid.UUID]*mmodel.Wallet, error) {
	panic("not used by query use cases")
}

func (r *fakeWalletRepo) UpdateBalance(context.Context, pgx.Tx, *mmodel.Wallet) error {
	panic("not used by query use cases")
}

type fakeTransactionRepo struct {
	byID map[uuid.UUID]*mmodel.Transaction
}

func (r *fakeTransactionRepo) Find(_ context.Context, id uuid.UUID) (*mmodel.Transaction, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, pkg.ValidateBusinessError(constant.ErrTransactionNotFound, "Transaction")
	}

	return t, nil
}

func (r *fakeTransactionRepo) FindByIdempotencyKey(context.Context, string) (*mmodel.Transaction, error) {
	panic("not used by query use cases")
}

func (r *fakeTransactionRepo) FindByIdempotencyKeyTx(context.Context, pgx.Tx, string) (*mmodel.Transaction, error) {
	panic("not used by query use cases")
}

func (r *fakeTransactionRepo) FindAllByWallet(_ context.Context, walletID uuid.UUID, _ mmodel.Filter) ([]*mmodel.Transaction, error) {
	var out []*mmodel.Transaction

	for _, t := range r.byID {
		if t.UserWalletID == walletID || t.SystemWalletID == walletID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *fakeTransactionRepo) Insert(context.Context, pgx.Tx, *mmodel.Transaction) error {
	panic("not used by query use cases")
}

func (r *fakeTransactionRepo) Complete(context.Context, pgx.Tx, uuid.UUID) error {
	panic("not used by query use cases")
}

type fakeLedgerEntryRepo struct {
	entries map[uuid.UUID][]mmodel.LedgerEntry
}

func (r *fakeLedgerEntryRepo) Insert(context.Context, pgx.Tx, *mmodel.LedgerEntry) error {
	panic("not used by query use cases")
}

func (r *fakeLedgerEntryRepo) FindAllByTransaction(_ context.Context, transactionID uuid.UUID) ([]mmodel.LedgerEntry, error) {
	return r.entries[transactionID], nil
}

type fakeAssetTypeRepo struct {
	assetTypes []*mmodel.AssetType
}

func (r *fakeAssetTypeRepo) Find(context.Context, uuid.UUID) (*mmodel.AssetType, error) {
	panic("not used by this suite")
}

func (r *fakeAssetTypeRepo) FindBySymbol(context.Context, string) (*mmodel.AssetType, error) {
	panic("not used by this suite")
}

func (r *fakeAssetTypeRepo) FindAll(context.Context) ([]*mmodel.AssetType, error) {
	return r.assetTypes, nil
}

func (r *fakeAssetTypeRepo) Create(context.Context, *mmodel.AssetType) (*mmodel.AssetType, error) {
	panic("not used by this suite")
}
