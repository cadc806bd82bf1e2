package command

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/LerianStudio/midaz-credits/pkg"
	"github.com/LerianStudio/midaz-credits/pkg/constant"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// fakeTransactor runs fn directly against a nil pgx.Tx, since every fake
// repository below ignores the tx argument it is handed. It never rolls
// back: fn's own fake-repository calls are the only state mutation, and
// tests assert on that state directly rather than on commit/rollback
// behavior (which belongs to mpostgres.Transactor and is not exercised
// here).
type fakeTransactor struct{}

func (fakeTransactor) Run(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeWalletRepo struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]*mmodel.Wallet
}

func newFakeWalletRepo(wallets ...*mmodel.Wallet) *fakeWalletRepo {
	r := &fakeWalletRepo{wallets: make(map[uuid.UUID]*mmodel.Wallet)}
	for _, w := range wallets {
		r.wallets[w.ID] = w
	}

	return r
}

func (r *fakeWalletRepo) Find(_ context.Context, id uuid.UUID) (*mmodel.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wallets[id]
	if !ok {
		return nil, pkg.ValidateBusinessError(constant.ErrWalletNotFound, "Wallet")
	}

	cp := *w

	return &cp, nil
}

func (r *fakeWalletRepo) FindAll(context.Context, mmodel.Filter) ([]*mmodel.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*mmodel.Wallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		cp := *w
		out = append(out, &cp)
	}

	return out, nil
}

func (r *fakeWalletRepo) Create(_ context.Context, w *mmodel.Wallet) (*mmodel.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	cp := *w
	r.wallets[w.ID] = &cp

	return &cp, nil
}

func (r *fakeWalletRepo) LockTwo(_ context.Context, _ pgx.Tx, idA, idB uuid.UUID) (map[uuid.UUID]*mmodel.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[uuid.UUID]*mmodel.Wallet, 2)

	for _, id := range []uuid.UUID{idA, idB} {
		w, ok := r.wallets[id]
		if !ok {
			return nil, pkg.ValidateBusinessError(constant.ErrWalletNotFound, "Wallet")
		}

		out[id] = w
	}

	return out, nil
}

func (r *fakeWalletRepo) UpdateBalance(_ context.Context, _ pgx.Tx, w *mmodel.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.wallets[w.ID]
	if !ok {
		return pkg.ValidateBusinessError(constant.ErrWalletNotFound, "Wallet")
	}

	existing.Balance = w.Balance

	return nil
}

type fakeTransactionRepo struct {
	mu           sync.Mutex
	byID         map[uuid.UUID]*mmodel.Transaction
	byIdemKey    map[string]*mmodel.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		byID:      make(map[uuid.UUID]*mmodel.Transaction),
		byIdemKey: make(map[string]*mmodel.Transaction),
	}
}

func (r *fakeTransactionRepo) Find(_ context.Context, id uuid.UUID) (*mmodel.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, pkg.ValidateBusinessError(constant.ErrTransactionNotFound, "Transaction")
	}

	return t, nil
}

func (r *fakeTransactionRepo) FindByIdempotencyKey(_ context.Context, key string) (*mmodel.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.byIdemKey[key], nil
}

func (r *fakeTransactionRepo) FindByIdempotencyKeyTx(_ context.Context, _ pgx.Tx, key string) (*mmodel.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.byIdemKey[key], nil
}

func (r *fakeTransactionRepo) FindAllByWallet(_ context.Context, walletID uuid.UUID, _ mmodel.Filter) ([]*mmodel.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*mmodel.Transaction

	for _, t := range r.byID {
		if t.UserWalletID == walletID || t.SystemWalletID == walletID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *fakeTransactionRepo) Insert(_ context.Context, _ pgx.Tx, t *mmodel.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.IdempotencyKey != nil {
		if _, exists := r.byIdemKey[*t.IdempotencyKey]; exists {
			return pkg.ValidateBusinessError(constant.ErrIdempotencyKeyConflict, "Transaction")
		}
	}

	r.byID[t.ID] = t

	if t.IdempotencyKey != nil {
		r.byIdemKey[*t.IdempotencyKey] = t
	}

	return nil
}

func (r *fakeTransactionRepo) Complete(_ context.Context, _ pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return pkg.ValidateBusinessError(constant.ErrTransactionNotFound, "Transaction")
	}

	t.Status = mmodel.StatusCompleted

	return nil
}

type fakeLedgerEntryRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]mmodel.LedgerEntry
}

func newFakeLedgerEntryRepo() *fakeLedgerEntryRepo {
	return &fakeLedgerEntryRepo{entries: make(map[uuid.UUID][]mmodel.LedgerEntry)}
}

func (r *fakeLedgerEntryRepo) Insert(_ context.Context, _ pgx.Tx, e *mmodel.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	r.entries[e.TransactionID] = append(r.entries[e.TransactionID], *e)

	return nil
}

func (r *fakeLedgerEntryRepo) FindAllByTransaction(_ context.Context, transactionID uuid.UUID) ([]mmodel.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.entries[transactionID], nil
}

type fakeIdempotencyRepo struct {
	mu      sync.Mutex
	records map[string]*mmodel.IdempotencyRecord
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{records: make(map[string]*mmodel.IdempotencyRecord)}
}

func idemCompositeKey(key, path string) string { return path + "|" + key }

func (r *fakeIdempotencyRepo) Find(_ context.Context, key, requestPath string) (*mmodel.IdempotencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.records[idemCompositeKey(key, requestPath)], nil
}

func (r *fakeIdempotencyRepo) Store(_ context.Context, rec *mmodel.IdempotencyRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := idemCompositeKey(rec.Key, rec.RequestPath)
	if _, exists := r.records[k]; exists {
		return false, nil
	}

	r.records[k] = rec

	return true, nil
}
