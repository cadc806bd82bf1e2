package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/internal/services/query"
	"github.com/LerianStudio/midaz-credits/pkg/mlog"
	httpx "github.com/LerianStudio/midaz-credits/pkg/net/http"
)

// WalletHandler exposes the wallet read views (C7).
type WalletHandler struct {
	Query *query.UseCase
}

// GetWalletByID retrieves a single wallet by id.
func (h *WalletHandler) GetWalletByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger := mlog.NewLoggerFromContext(ctx)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpx.WithError(c, httpx.ValidationFieldsError{Message: "id must be a valid UUID"})
	}

	wallet, err := h.Query.GetWallet(ctx, id)
	if err != nil {
		logger.Errorf("failed to retrieve wallet %s: %s", id, err.Error())
		return httpx.WithError(c, err)
	}

	return httpx.OK(c, wallet)
}

// GetWalletBalance retrieves the narrow balance view for a wallet.
func (h *WalletHandler) GetWalletBalance(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpx.WithError(c, httpx.ValidationFieldsError{Message: "id must be a valid UUID"})
	}

	balance, err := h.Query.GetWalletBalance(ctx, id)
	if err != nil {
		return httpx.WithError(c, err)
	}

	return httpx.OK(c, balance)
}

// ListWallets returns a page of wallets, optionally scoped by owner kind.
func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter := httpx.ParseFilter(c)

	wallets, err := h.Query.ListWallets(ctx, filter)
	if err != nil {
		return httpx.WithError(c, err)
	}

	return httpx.OKPaginated(c, wallets, fiber.Map{"page": filter.Page, "limit": filter.Limit})
}

// ListWalletTransactions returns a page of a wallet's transaction
// history.
func (h *WalletHandler) ListWalletTransactions(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpx.WithError(c, httpx.ValidationFieldsError{Message: "id must be a valid UUID"})
	}

	filter := httpx.ParseFilter(c)

	transactions, err := h.Query.ListWalletTransactions(ctx, id, filter)
	if err != nil {
		return httpx.WithError(c, err)
	}

	return httpx.OKPaginated(c, transactions, fiber.Map{"page": filter.Page, "limit": filter.Limit})
}
