package in

import (
	"github.com/gofiber/fiber/v2"

	httpx "github.com/LerianStudio/midaz-credits/pkg/net/http"
)

// DefaultErrorHandler catches anything a handler returns that was not
// already rendered through httpx.WithError — panics recovered by
// fiber's Recover middleware, routing errors (404 on an unknown path),
// and body-size/timeout faults fiber itself raises.
func DefaultErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusNotFound {
		return httpx.WithError(c, httpx.ValidationFieldsError{Message: "route not found"})
	}

	return httpx.WithError(c, err)
}
