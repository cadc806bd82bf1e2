package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// ParseFilter reads page/limit/ownerType query parameters into a
// mmodel.Filter, clamping limit to 100 per spec.md §6.
func ParseFilter(c *fiber.Ctx) mmodel.Filter {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	f := mmodel.Filter{Page: page, Limit: limit, OwnerKind: c.Query("ownerType")}
	f.Limit = f.SafeLimit(100)
	f.Page = f.SafePage()

	return f
}
