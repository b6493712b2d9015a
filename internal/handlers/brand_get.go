package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/services"
)

// BrandGetter defines the interface that the brand service must implement.
type BrandGetter interface {
	Get(ctx context.Context, brandID, requesterID uuid.UUID) (*services.BrandDetail, error)
}

// NewBrandGetHandler returns an HTTP handler for a brand's detail view.
// @Summary Get a brand
// @Description Returns the brand with its active products and visible assets. Private brands answer 404 for non-owners.
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Success 200 {object} services.BrandDetail "Brand detail"
// @Failure 400 {object} handlers.ErrorResponse "Malformed brand ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Brand not found"
// @Router /brands/{brandID} [get]
func NewBrandGetHandler(svc BrandGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		brandID, ok := uuidParam(w, r, "brandID")
		if !ok {
			return
		}

		detail, err := svc.Get(r.Context(), brandID, claims.UserID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, detail)
	}
}
