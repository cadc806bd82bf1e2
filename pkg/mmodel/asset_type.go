package mmodel

import (
	"time"

	"github.com/google/uuid"
)

// AssetType is a fungible currency class (a game currency, a loyalty
// point scheme). Once a Wallet references it, it is referentially
// immutable: its id, name and symbol never change underneath a Wallet.
type AssetType struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
