package query

import (
	"context"

	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
)

// ListAssetTypes returns every registered asset type.
func (uc *UseCase) ListAssetTypes(ctx context.Context) ([]*mmodel.AssetType, error) {
	return uc.AssetTypeRepo.FindAll(ctx)
}
