package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// AssetDeleter defines the interface that the asset service must implement.
type AssetDeleter interface {
	Delete(ctx context.Context, brandID, assetID, requesterID uuid.UUID) error
}

// NewAssetDeleteHandler returns an HTTP handler for removing a brand
// asset, row and file both.
// @Summary Delete a brand asset
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Param assetID path string true "Asset ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the brand owner"
// @Failure 404 {object} handlers.ErrorResponse "Brand or asset not found"
// @Router /brands/{brandID}/assets/{assetID} [delete]
func NewAssetDeleteHandler(svc AssetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		brandID, ok := uuidParam(w, r, "brandID")
		if !ok {
			return
		}
		assetID, ok := uuidParam(w, r, "assetID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), brandID, assetID, claims.UserID); err != nil {
			respondServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
