package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/validation"
)

// ProfileUpdater defines the interface that the user service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.UserProfileUpdate) (*models.UserDB, error)
}

// ProfileUpdateRequest represents the JSON body for a profile update.
// Absent fields keep their stored value.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=100"`
}

// NewProfileUpdateHandler returns an HTTP handler for updating the
// caller's profile. Email and role are not updatable.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Fields to update"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /users/profile [put]
func NewProfileUpdateHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, models.UserProfileUpdate{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CompanyName: req.CompanyName,
			Phone:       req.Phone,
			Title:       req.Title,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}
