package in

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/internal/services/command"
	"github.com/LerianStudio/midaz-credits/pkg"
	"github.com/LerianStudio/midaz-credits/pkg/constant"
	"github.com/LerianStudio/midaz-credits/pkg/mlog"
	httpx "github.com/LerianStudio/midaz-credits/pkg/net/http"
)

// WithRequestID reads X-Request-ID from the incoming request, generating
// one when absent, stores it on the request context, and echoes it on
// the response (spec.md §6).
func WithRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if strings.TrimSpace(id) == "" {
			id = uuid.NewString()
		}

		c.Set("X-Request-ID", id)
		c.SetUserContext(pkg.ContextWithRequestID(c.UserContext(), id))

		return c.Next()
	}
}

// WithLogging attaches a request-scoped logger carrying the request id
// to the context and logs one line per request (requests to /health
// pass through with neither), mirroring the teacher's
// Common Log Format access logger without its gRPC half (dropped; this
// service has no gRPC surface).
func WithLogging(logger mlog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		start := time.Now()
		requestID := pkg.RequestIDFromContext(c.UserContext())
		scoped := logger.WithFields("requestId", requestID)

		c.SetUserContext(mlog.ContextWithLogger(c.UserContext(), scoped))

		err := c.Next()

		scoped.Infof("%s %s -> %d (%s)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))

		return err
	}
}

// WithIdempotency implements the request-boundary pipeline stage spec.md
// §9 calls for in place of the source's response-serializer monkeypatch:
// it looks the idempotency store up before the handler runs, short-
// circuiting on a hit, and on a miss writes the handler's own response
// to the store afterward. The handler's response envelope is read as a
// value off c.Response(), never mutated in place.
func WithIdempotency(uc *command.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("Idempotency-Key")
		if strings.TrimSpace(key) == "" {
			return httpx.WithError(c, pkg.ValidateBusinessError(constant.ErrMissingIdempotencyKey, "Transaction"))
		}

		ctx := c.UserContext()
		path := c.Path()

		cached, err := uc.LookupIdempotency(ctx, key, path)
		if err != nil {
			return httpx.WithError(c, err)
		}

		if cached != nil {
			c.Set("X-Idempotency-Replayed", "true")
			return c.Status(cached.Status).Send(cached.Body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		body := append([]byte(nil), c.Response().Body()...)

		return uc.StoreIdempotency(ctx, key, path, status, body)
	}
}
