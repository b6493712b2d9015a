package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RelationshipDeleter defines the interface that the relationship service
// must implement.
type RelationshipDeleter interface {
	Delete(ctx context.Context, relationshipID, retailerID uuid.UUID) error
}

// NewRelationshipDeleteHandler returns an HTTP handler for removing the
// caller's relationship.
// @Summary Delete a relationship
// @Tags relationships
// @Produce json
// @Security BearerAuth
// @Param relationshipID path string true "Relationship ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed relationship ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Relationship not found"
// @Router /relationships/{relationshipID} [delete]
func NewRelationshipDeleteHandler(svc RelationshipDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		relationshipID, ok := uuidParam(w, r, "relationshipID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), relationshipID, claims.UserID); err != nil {
			respondServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
