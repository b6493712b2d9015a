package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/validation"
)

// RelationshipUpdater defines the interface that the relationship service
// must implement.
type RelationshipUpdater interface {
	Update(ctx context.Context, relationshipID, retailerID uuid.UUID, upd models.RelationshipUpdate) (*models.RelationshipDB, error)
}

// RelationshipUpdateRequest represents the JSON body for a relationship
// update. Absent fields keep their stored value.
// swagger:model RelationshipUpdateRequest
type RelationshipUpdateRequest struct {
	Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=prospective pending active inactive"`
	Priority        *string    `json:"priority,omitempty" validate:"omitempty,oneof=low normal high"`
	PartnershipType *string    `json:"partnership_type,omitempty" validate:"omitempty,max=100"`
	StartedDate     *time.Time `json:"started_date,omitempty"`
	Notes           *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// NewRelationshipUpdateHandler returns an HTTP handler for updating the
// caller's relationship. Any legal status may be set directly.
// @Summary Update a relationship
// @Tags relationships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param relationshipID path string true "Relationship ID"
// @Param relationshipUpdateRequest body handlers.RelationshipUpdateRequest true "Fields to update"
// @Success 200 {object} models.RelationshipDB "Updated relationship"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Relationship not found"
// @Router /relationships/{relationshipID} [put]
func NewRelationshipUpdateHandler(svc RelationshipUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		relationshipID, ok := uuidParam(w, r, "relationshipID")
		if !ok {
			return
		}

		var req RelationshipUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		rel, err := svc.Update(r.Context(), relationshipID, claims.UserID, models.RelationshipUpdate{
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

		respondJSON(w, http.StatusOK, rel)
	}
}
