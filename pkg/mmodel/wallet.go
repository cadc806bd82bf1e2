package mmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerKind distinguishes a wallet held by an end user from one held by
// a service role (treasury, revenue, bonus pool).
type OwnerKind string

const (
	OwnerKindUser   OwnerKind = "user"
	OwnerKindSystem OwnerKind = "system"
)

// Wallet is a balance holder for exactly one AssetType. Its balance is
// mutated exclusively by the flow engine under an exclusive row lock;
// nothing else in this codebase may write wallets.balance.
type Wallet struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"ownerId"`
	OwnerKind   OwnerKind       `json:"ownerKind"`
	AssetTypeID uuid.UUID       `json:"assetTypeId"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	Name        string          `json:"name,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BalanceView is the read-only shape returned by GET
// /wallets/{id}/balance — deliberately narrower than Wallet so a
// balance poll doesn't leak owner/asset metadata.
type BalanceView struct {
	WalletID  uuid.UUID       `json:"walletId"`
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"isActive"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
