package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/validation"
)

// BrandUpdater defines the interface that the brand service must implement.
type BrandUpdater interface {
	Update(ctx context.Context, brandID, requesterID uuid.UUID, upd models.BrandUpdate) (*models.BrandDB, error)
}

// BrandUpdateRequest represents the JSON body for a brand update.
// Absent fields keep their stored value.
// swagger:model BrandUpdateRequest
type BrandUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Website     *string `json:"website,omitempty" validate:"omitempty,max=300"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=300"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string `json:"state,omitempty" validate:"omitempty,max=100"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,max=500"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// NewBrandUpdateHandler returns an HTTP handler for updating a brand
// profile. The completion score is recomputed on every update.
// @Summary Update a brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Param brandUpdateRequest body handlers.BrandUpdateRequest true "Fields to update"
// @Success 200 {object} models.BrandDB "Updated brand"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the brand owner"
// @Failure 404 {object} handlers.ErrorResponse "Brand not found"
// @Router /brands/{brandID} [put]
func NewBrandUpdateHandler(svc BrandUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		brandID, ok := uuidParam(w, r, "brandID")
		if !ok {
			return
		}

		var req BrandUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		brand, err := svc.Update(r.Context(), brandID, claims.UserID, models.BrandUpdate{
			Name:        req.Name,
			Description: req.Description,
			Industry:    req.Industry,
			Website:     req.Website,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			City:        req.City,
			State:       req.State,
			LogoURL:     req.LogoURL,
			IsPublic:    req.IsPublic,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, brand)
	}
}
