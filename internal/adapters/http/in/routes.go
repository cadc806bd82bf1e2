package in

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/midaz-credits/internal/services/command"
	"github.com/LerianStudio/midaz-credits/internal/services/query"
	"github.com/LerianStudio/midaz-credits/pkg/mlog"
	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
	"github.com/LerianStudio/midaz-credits/pkg/mredis"
)

// RegisterRoutes wires the wire API in spec.md §6 onto app. The three
// mutation routes carry WithIdempotency; every route carries request id
// propagation, and every route except /health carries access logging.
func RegisterRoutes(app *fiber.App, cmd *command.UseCase, qry *query.UseCase, pg *mpostgres.Connection, rd *mredis.Connection, logger mlog.Logger) {
	app.Use(WithRequestID())
	app.Use(WithLogging(logger))

	health := &HealthHandler{Postgres: pg, Redis: rd}
	app.Get("/health", health.Check)

	v1 := app.Group("/api/v1")

	assetTypes := &AssetTypeHandler{Query: qry}
	v1.Get("/asset-types", assetTypes.ListAssetTypes)

	wallets := &WalletHandler{Query: qry}
	v1.Get("/wallets", wallets.ListWallets)
	v1.Get("/wallets/:id", wallets.GetWalletByID)
	v1.Get("/wallets/:id/balance", wallets.GetWalletBalance)
	v1.Get("/wallets/:id/transactions", wallets.ListWalletTransactions)

	transactions := &TransactionHandler{Command: cmd, Query: qry}
	v1.Get("/transactions/:id", transactions.GetTransactionByID)

	idempotent := v1.Group("/transactions", WithIdempotency(cmd))
	idempotent.Post("/topup", transactions.CreateTopup)
	idempotent.Post("/bonus", transactions.CreateBonus)
	idempotent.Post("/spend", transactions.CreateSpend)
}
