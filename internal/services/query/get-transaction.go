package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// GetTransaction retrieves a transaction along with both of its ledger
// entries, in created_at order.
func (uc *UseCase) GetTransaction(ctx context.Context, id uuid.UUID) (*mmodel.Transaction, error) {
	t, err := uc.TransactionRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := uc.LedgerEntryRepo.FindAllByTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Entries = entries

	return t, nil
}
