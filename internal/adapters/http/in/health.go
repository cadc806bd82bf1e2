package in

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
	"github.com/LerianStudio/midaz-credits/pkg/mredis"
	httpx "github.com/LerianStudio/midaz-credits/pkg/net/http"
)

// HealthHandler reports whether the service's two dependencies --
// Postgres and redis -- are reachable. This is a supplemented feature:
// spec.md §6 names GET /health but leaves its body shape unspecified
// beyond the status code.
type HealthHandler struct {
	Postgres *mpostgres.Connection
	Redis    *mredis.Connection
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx := c.UserContext()

	detail := fiber.Map{"postgres": "ok", "redis": "ok"}
	healthy := true

	if err := h.Postgres.Pool.Ping(ctx); err != nil {
		detail["postgres"] = err.Error()
		healthy = false
	}

	client, err := h.Redis.GetClient(ctx)
	if err == nil {
		err = client.Ping(ctx).Err()
	}

	if err != nil {
		detail["redis"] = err.Error()
		healthy = false
	}

	if healthy {
		return httpx.Healthy(c, detail)
	}

	return httpx.Unhealthy(c, detail)
}
