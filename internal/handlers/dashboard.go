package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/roles"
	"github.com/rollodex/brandcentral/internal/services"
)

// DashboardProvider defines the interface that the analytics service must
// implement.
type DashboardProvider interface {
	Dashboard(ctx context.Context, userID uuid.UUID, role roles.Role) (*services.Dashboard, error)
}

// NewDashboardHandler returns an HTTP handler for the role-specific
// dashboard aggregates.
// @Summary Dashboard aggregates
// @Description Retailer-side users see the public brand count and their relationship totals; brand owners see asset and product counts plus incoming relationships by status.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Dashboard "Aggregates for the caller's role"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Brand owner without a brand"
// @Router /analytics/dashboard [get]
func NewDashboardHandler(svc DashboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		role, err := roles.Parse(claims.Role)
		if err != nil {
			role = roles.Basic
		}

		dashboard, err := svc.Dashboard(r.Context(), claims.UserID, role)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, dashboard)
	}
}
