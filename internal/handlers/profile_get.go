package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
)

// ProfileGetter defines the interface that the user service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewProfileGetHandler returns an HTTP handler for reading the caller's
// profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User no longer exists"
// @Router /users/profile [get]
func NewProfileGetHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}
