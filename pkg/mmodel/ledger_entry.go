package mmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is which leg of a double-entry posting a LedgerEntry represents.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// LedgerEntry is an immutable posting against one wallet, carrying the
// balance snapshot immediately before and after it was applied. Two of
// these exist per completed Transaction, summing to zero.
type LedgerEntry struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID uuid.UUID       `json:"transactionId"`
	WalletID      uuid.UUID       `json:"walletId"`
	Side          Side            `json:"side"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
}
