package mmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is one of the three business flows the ledger supports.
type Kind string

const (
	KindTopup Kind = "topup"
	KindBonus Kind = "bonus"
	KindSpend Kind = "spend"
)

// Status tracks a Transaction through its lifecycle. A Transaction is
// only ever visible to readers once it reaches Completed; Pending rows
// exist only inside the business transaction that is writing them, and
// Failed is reserved for diagnostics — the flow engine never leaves a
// Failed row behind, it rolls the whole insert back instead (spec.md §4.5).
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Metadata is an arbitrary, flow-supplied key/value bag stored
// alongside a Transaction (reason, serviceId, or caller-supplied
// annotations), persisted as jsonb.
type Metadata map[string]any

// Transaction is a single business event: a topup, a bonus grant, or a
// spend. It owns exactly two LedgerEntry postings once Completed.
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	Kind            Kind            `json:"kind"`
	Status          Status          `json:"status"`
	UserWalletID    uuid.UUID       `json:"userWalletId"`
	SystemWalletID  uuid.UUID       `json:"systemWalletId"`
	Amount          decimal.Decimal `json:"amount"`
	ReferenceID     *string         `json:"referenceId,omitempty"`
	IdempotencyKey  *string         `json:"-"`
	Description     string          `json:"description,omitempty"`
	Metadata        Metadata        `json:"metadata,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Entries         []LedgerEntry   `json:"entries,omitempty"`
}

// TopupInput is the validated request body for POST
// /transactions/topup.
type TopupInput struct {
	WalletID       uuid.UUID      `json:"walletId" validate:"required"`
	SystemWalletID uuid.UUID      `json:"systemWalletId" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	ReferenceID    string         `json:"referenceId" validate:"required"`
	Description    string         `json:"description,omitempty"`
	Metadata       Metadata       `json:"metadata,omitempty"`
}

// BonusInput is the validated request body for POST
// /transactions/bonus.
type BonusInput struct {
	WalletID       uuid.UUID      `json:"walletId" validate:"required"`
	SystemWalletID uuid.UUID      `json:"systemWalletId" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	Reason         string         `json:"reason" validate:"required"`
	Description    string         `json:"description,omitempty"`
	Metadata       Metadata       `json:"metadata,omitempty"`
}

// SpendInput is the validated request body for POST
// /transactions/spend.
type SpendInput struct {
	WalletID       uuid.UUID      `json:"walletId" validate:"required"`
	SystemWalletID uuid.UUID      `json:"systemWalletId" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	ServiceID      string         `json:"serviceId" validate:"required"`
	Description    string         `json:"description,omitempty"`
	Metadata       Metadata       `json:"metadata,omitempty"`
}
