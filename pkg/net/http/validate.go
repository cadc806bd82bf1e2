package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	validator "gopkg.in/go-playground/validator.v9"
)

var validate = validator.New()

// ParseAndValidate decodes c's JSON body into out and runs struct
// validation tags against it, returning a ValidationFieldsError that
// WithError renders as 422 VALIDATION_ERROR on failure. Decoding and
// tag validation are ambient request-boundary concerns (spec.md §1's
// "request payload validation" is explicitly out of the core's scope);
// this only shapes the HTTP-facing error, it never decides business
// rules.
func ParseAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return ValidationFieldsError{Message: "The request body could not be parsed as JSON."}
	}

	if err := validate.Struct(out); err != nil {
		fields := map[string]string{}

		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}

		return ValidationFieldsError{
			Message: "One or more required fields are missing or invalid.",
			Fields:  fields,
		}
	}

	return nil
}
