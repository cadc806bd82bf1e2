package in

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/midaz-credits/internal/services/query"
	httpx "github.com/LerianStudio/midaz-credits/pkg/net/http"
)

// AssetTypeHandler exposes the asset type read view (C7).
type AssetTypeHandler struct {
	Query *query.UseCase
}

// ListAssetTypes handles GET /api/v1/asset-types.
func (h *AssetTypeHandler) ListAssetTypes(c *fiber.Ctx) error {
	assetTypes, err := h.Query.ListAssetTypes(c.UserContext())
	if err != nil {
		return httpx.WithError(c, err)
	}

	return httpx.OK(c, assetTypes)
}
