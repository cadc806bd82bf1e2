package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/midaz-credits/pkg"
)

// WithError serializes err into the error envelope, picking the HTTP
// status per the kind→status mapping in spec.md §7. Unclassified
// errors become a generic 500 with no internal detail leaked to the
// client.
func WithError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case pkg.EntityNotFoundError:
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", e.Message, nil)
	case pkg.EntityConflictError:
		return fail(c, fiber.StatusConflict, "CONFLICT", e.Message, nil)
	case pkg.InsufficientFundsError:
		return fail(c, fiber.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", e.Message, fiber.Map{
			"available": e.Available,
			"required":  e.Required,
		})
	case pkg.ValidationError:
		if e.Code == "CONSTRAINT_VIOLATION" {
			return fail(c, fiber.StatusUnprocessableEntity, "CONSTRAINT_VIOLATION", e.Message, nil)
		}

		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", e.Message, nil)
	case pkg.UnprocessableOperationError:
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", e.Message, nil)
	case ValidationFieldsError:
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", e.Message, e.Fields)
	case RateLimitedError:
		return fail(c, fiber.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", e.Message, nil)
	default:
		var internal pkg.InternalServerError
		if errors.As(err, &internal) {
			return fail(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", internal.Message, nil)
		}

		fallback := pkg.ValidateInternalError(err, "")

		var fallbackInternal pkg.InternalServerError
		_ = errors.As(fallback, &fallbackInternal)

		return fail(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallbackInternal.Message, nil)
	}
}

// ValidationFieldsError is raised by request-DTO validation (ambient,
// external to the core per spec.md §1) when go-playground/validator
// rejects a payload.
type ValidationFieldsError struct {
	Message string
	Fields  map[string]string
}

func (e ValidationFieldsError) Error() string { return e.Message }

// RateLimitedError is raised by the (non-goal) rate limiter middleware.
type RateLimitedError struct {
	Message string
}

func (e RateLimitedError) Error() string { return e.Message }
