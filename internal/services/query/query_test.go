package query

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/midaz-credits/pkg"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

func TestGetWallet_NotFound(t *testing.T) {
	uc := &UseCase{WalletRepo: &fakeWalletRepo{wallets: map[uuid.UUID]*mmodel.Wallet{}}}

	_, err := uc.GetWallet(context.Background(), uuid.New())

	require.Error(t, err)

	var notFound pkg.EntityNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetWalletBalance_ProjectsNarrowView(t *testing.T) {
	id := uuid.New()
	w := &mmodel.Wallet{ID: id, Balance: decimal.NewFromInt(42), IsActive: true}

	uc := &UseCase{WalletRepo: &fakeWalletRepo{wallets: map[uuid.UUID]*mmodel.Wallet{id: w}}}

	balance, err := uc.GetWalletBalance(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(42)))
	assert.Equal(t, id, balance.WalletID)
}

func TestListWalletTransactions_404sOnUnknownWallet(t *testing.T) {
	uc := &UseCase{
		WalletRepo:      &fakeWalletRepo{wallets: map[uuid.UUID]*mmodel.Wallet{}},
		TransactionRepo: &fakeTransactionRepo{byID: map[uuid.UUID]*mmodel.Transaction{}},
	}

	_, err := uc.ListWalletTransactions(context.Background(), uuid.New(), mmodel.Filter{})

	require.Error(t, err)

	var notFound pkg.EntityNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListWalletTransactions_ScopesToWallet(t *testing.T) {
	walletID := uuid.New()
	otherWalletID := uuid.New()

	mine := &mmodel.Transaction{ID: uuid.New(), UserWalletID: walletID, SystemWalletID: uuid.New()}
	notMine := &mmodel.Transaction{ID: uuid.New(), UserWalletID: otherWalletID, SystemWalletID: uuid.New()}

	uc := &UseCase{
		WalletRepo: &fakeWalletRepo{wallets: map[uuid.UUID]*mmodel.Wallet{walletID: {ID: walletID}}},
		TransactionRepo: &fakeTransactionRepo{byID: map[uuid.UUID]*mmodel.Transaction{
			mine.ID:    mine,
			notMine.ID: notMine,
		}},
	}

	got, err := uc.ListWalletTransactions(context.Background(), walletID, mmodel.Filter{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestGetTransaction_AttachesEntries(t *testing.T) {
	txnID := uuid.New()
	txn := &mmodel.Transaction{ID: txnID}
	entries := []mmodel.LedgerEntry{{ID: uuid.New(), TransactionID: txnID}, {ID: uuid.New(), TransactionID: txnID}}

	uc := &UseCase{
		TransactionRepo: &fakeTransactionRepo{byID: map[uuid.UUID]*mmodel.Transaction{txnID: txn}},
		LedgerEntryRepo: &fakeLedgerEntryRepo{entries: map[uuid.UUID][]mmodel.LedgerEntry{txnID: entries}},
	}

	got, err := uc.GetTransaction(context.Background(), txnID)

	require.NoError(t, err)
	assert.Len(t, got.Entries, 2)
}

func TestListAssetTypes_ReturnsAll(t *testing.T) {
	uc := &UseCase{AssetTypeRepo: &fakeAssetTypeRepo{assetTypes: []*mmodel.AssetType{{ID: uuid.New(), Name: "Gold"}}}}

	got, err := uc.ListAssetTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gold", got[0].Name)
}
