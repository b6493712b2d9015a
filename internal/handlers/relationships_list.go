package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
)

// RelationshipLister defines the interface that the relationship service
// must implement.
type RelationshipLister interface {
	ListForRole(ctx context.Context, userID uuid.UUID, role roles.Role) ([]models.RetailerRelationshipView, []models.BrandRelationshipView, error)
}

// RelationshipListResponse holds one side's relationship listing
// swagger:model RelationshipListResponse
type RelationshipListResponse struct {
	Relationships any `json:"relationships"`
}

// NewRelationshipsListHandler returns an HTTP handler for the caller's
// relationships. Brand admins see incoming relationships for their
// brands; retailer-side users see their own, highest priority first.
// @Summary List relationships
// @Tags relationships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.RelationshipListResponse "Relationships for the caller's role"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /relationships [get]
func NewRelationshipsListHandler(svc RelationshipLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		role, err := roles.Parse(claims.Role)
		if err != nil {
			role = roles.Basic
		}

		retailerSide, brandSide, err := svc.ListForRole(r.Context(), claims.UserID, role)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		if role.IsBrand() {
			if brandSide == nil {
				brandSide = []models.BrandRelationshipView{}
			}
			respondJSON(w, http.StatusOK, RelationshipListResponse{Relationships: brandSide})
			return
		}
		if retailerSide == nil {
			retailerSide = []models.RetailerRelationshipView{}
		}
		respondJSON(w, http.StatusOK, RelationshipListResponse{Relationships: retailerSide})
	}
}
