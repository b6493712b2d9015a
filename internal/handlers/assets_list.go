package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
)

// AssetLister defines the interface that the asset service must implement.
type AssetLister interface {
	List(ctx context.Context, brandID, requesterID uuid.UUID) ([]models.AssetDB, error)
}

// AssetListResponse lists a brand's assets
// swagger:model AssetListResponse
type AssetListResponse struct {
	Assets []models.AssetDB `json:"assets"`
}

// NewAssetsListHandler returns an HTTP handler for a brand's assets. The
// owner sees all assets; others see the public and partners-only assets
// of public brands.
// @Summary List brand assets
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Success 200 {object} handlers.AssetListResponse "Visible assets"
// @Failure 400 {object} handlers.ErrorResponse "Malformed brand ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Brand is private"
// @Failure 404 {object} handlers.ErrorResponse "Brand not found"
// @Router /brands/{brandID}/assets [get]
func NewAssetsListHandler(svc AssetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		brandID, ok := uuidParam(w, r, "brandID")
		if !ok {
			return
		}

		assets, err := svc.List(r.Context(), brandID, claims.UserID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if assets == nil {
			assets = []models.AssetDB{}
		}

		respondJSON(w, http.StatusOK, AssetListResponse{Assets: assets})
	}
}
