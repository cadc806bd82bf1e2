package bootstrap

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpin "github.com/LerianStudio/midaz-credits/internal/adapters/http/in"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/assettype"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/idempotency"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/ledgerentry"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/transaction"
	"github.com/LerianStudio/midaz-credits/internal/adapters/postgres/wallet"
	redisadapter "github.com/LerianStudio/midaz-credits/internal/adapters/redis"
	"github.com/LerianStudio/midaz-credits/internal/services/command"
	"github.com/LerianStudio/midaz-credits/internal/services/query"
	"github.com/LerianStudio/midaz-credits/pkg/mlog"
	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
	"github.com/LerianStudio/midaz-credits/pkg/mredis"
	"github.com/LerianStudio/midaz-credits/pkg/mzap"
)

// Service bundles everything the entrypoint needs to run and shut the
// process down, mirroring the teacher's Service struct in cmd/app.
type Service struct {
	App      *fiber.App
	Postgres *mpostgres.Connection
	Redis    *mredis.Connection
	Logger   mlog.Logger
	Config   Config
}

// NewService wires repositories, use cases, and HTTP routes from cfg.
func NewService(ctx context.Context, cfg Config) (*Service, error) {
	logger, err := mzap.InitializeLogger(cfg.LogLevelParsed())
	if err != nil {
		return nil, err
	}

	pg, err := mpostgres.Connect(ctx, cfg.PostgresConfig())
	if err != nil {
		return nil, err
	}

	rd := &mredis.Connection{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: "",
		DB:       0,
		Logger:   logger,
	}

	if err := rd.Connect(ctx); err != nil {
		pg.Close()
		return nil, err
	}

	walletRepo := wallet.NewPostgreSQLRepository(pg)
	transactionRepo := transaction.NewPostgreSQLRepository(pg)
	ledgerEntryRepo := ledgerentry.NewPostgreSQLRepository(pg)
	assetTypeRepo := assettype.NewPostgreSQLRepository(pg)
	idempotencyRepo := idempotency.NewPostgreSQLRepository(pg)
	redisRepo := redisadapter.NewRedisRepository(rd)

	cmdUC := &command.UseCase{
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		LedgerEntryRepo: ledgerEntryRepo,
		AssetTypeRepo:   assetTypeRepo,
		IdempotencyRepo: idempotencyRepo,
		RedisRepo:       redisRepo,
		Transactor:      &mpostgres.Transactor{Pool: pg},
		Logger:          logger,
		IdempotencyTTL:  cfg.IdempotencyTTL,
	}

	qryUC := &query.UseCase{
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		LedgerEntryRepo: ledgerEntryRepo,
		AssetTypeRepo:   assetTypeRepo,
		Logger:          logger,
	}

	app := fiber.New(fiber.Config{
		AppName:      "midaz-credits",
		ErrorHandler: httpin.DefaultErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())

	httpin.RegisterRoutes(app, cmdUC, qryUC, pg, rd, logger)

	return &Service{App: app, Postgres: pg, Redis: rd, Logger: logger, Config: cfg}, nil
}

// Shutdown stops accepting new connections, drains in-flight requests,
// and closes the Postgres pool, forcing an exit if draining takes
// longer than 10 seconds (spec.md §9).
func (s *Service) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = s.App.ShutdownWithContext(ctx)

	s.Postgres.Close()

	_ = s.Logger.Sync()
}
