package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/internal/services/command"
	"github.com/LerianStudio/midaz-credits/internal/services/query"
	"github.com/LerianStudio/midaz-credits/pkg/mlog"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
	httpx "github.com/LerianStudio/midaz-credits/pkg/net/http"
)

// TransactionHandler exposes the three mutation flows (C6) and the
// transaction read view (C7).
type TransactionHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
}

// CreateTopup handles POST /api/v1/transactions/topup.
func (h *TransactionHandler) CreateTopup(c *fiber.Ctx) error {
	var in mmodel.TopupInput
	if err := httpx.ParseAndValidate(c, &in); err != nil {
		return httpx.WithError(c, err)
	}

	ctx := c.UserContext()
	logger := mlog.NewLoggerFromContext(ctx)

	txn, err := h.Command.CreateTopup(ctx, in, c.Get("Idempotency-Key"))
	if err != nil {
		logger.Errorf("topup failed: %s", err.Error())
		return httpx.WithError(c, err)
	}

	return httpx.Created(c, txn)
}

// CreateBonus handles POST /api/v1/transactions/bonus.
func (h *TransactionHandler) CreateBonus(c *fiber.Ctx) error {
	var in mmodel.BonusInput
	if err := httpx.ParseAndValidate(c, &in); err != nil {
		return httpx.WithError(c, err)
	}

	ctx := c.UserContext()
	logger := mlog.NewLoggerFromContext(ctx)

	txn, err := h.Command.CreateBonus(ctx, in, c.Get("Idempotency-Key"))
	if err != nil {
		logger.Errorf("bonus failed: %s", err.Error())
		return httpx.WithError(c, err)
	}

	return httpx.Created(c, txn)
}

// CreateSpend handles POST /api/v1/transactions/spend.
func (h *TransactionHandler) CreateSpend(c *fiber.Ctx) error {
	var in mmodel.SpendInput
	if err := httpx.ParseAndValidate(c, &in); err != nil {
		return httpx.WithError(c, err)
	}

	ctx := c.UserContext()
	logger := mlog.NewLoggerFromContext(ctx)

	txn, err := h.Command.CreateSpend(ctx, in, c.Get("Idempotency-Key"))
	if err != nil {
		logger.Errorf("spend failed: %s", err.Error())
		return httpx.WithError(c, err)
	}

	return httpx.Created(c, txn)
}

// GetTransactionByID handles GET /api/v1/transactions/{id}.
func (h *TransactionHandler) GetTransactionByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpx.WithError(c, httpx.ValidationFieldsError{Message: "id must be a valid UUID"})
	}

	txn, err := h.Query.GetTransaction(ctx, id)
	if err != nil {
		return httpx.WithError(c, err)
	}

	return httpx.OK(c, txn)
}
