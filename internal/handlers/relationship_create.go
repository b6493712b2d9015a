package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/services"
	"github.com/rollodex/brandcentral/internal/validation"
)

// RelationshipCreator defines the interface that the relationship service
// must implement.
type RelationshipCreator interface {
	Create(ctx context.Context, retailerID uuid.UUID, p services.RelationshipCreateParams) (*models.RelationshipDB, error)
}

// RelationshipCreateRequest represents the JSON body for opening a
// relationship
// swagger:model RelationshipCreateRequest
type RelationshipCreateRequest struct {
	// Target brand
	// required: true
	BrandID string `json:"brand_id" validate:"required,uuid"`

	// Initial status, defaults to prospective
	Status string `json:"status,omitempty" validate:"omitempty,oneof=prospective pending active inactive"`

	// Priority, defaults to normal
	Priority string `json:"priority,omitempty" validate:"omitempty,oneof=low normal high"`

	PartnershipType *string    `json:"partnership_type,omitempty" validate:"omitempty,max=100"`
	StartedDate     *time.Time `json:"started_date,omitempty"`
	Notes           *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// NewRelationshipCreateHandler returns an HTTP handler for opening a
// relationship to a public brand.
// @Summary Create a relationship
// @Description Opens a relationship from the caller to a public brand. One relationship per brand-retailer pair.
// @Tags relationships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param relationshipCreateRequest body handlers.RelationshipCreateRequest true "Relationship to open"
// @Success 201 {object} models.RelationshipDB "Created relationship"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Brand not found or not public"
// @Failure 409 {object} handlers.ErrorResponse "Relationship already exists"
// @Router /relationships [post]
func NewRelationshipCreateHandler(svc RelationshipCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		var req RelationshipCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		brandID, err := uuid.Parse(req.BrandID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid brand_id", "VALIDATION_ERROR")
			return
		}

		rel, err := svc.Create(r.Context(), claims.UserID, services.RelationshipCreateParams{
			BrandID:         brandID,
			Status:          req.Status,
			Priority:        req.Priority,
			PartnershipType: req.PartnershipType,
			StartedDate:     req.StartedDate,
			Notes:           req.Notes,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, rel)
	}
}
