package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ProductDeleter defines the interface that the product service must
// implement.
type ProductDeleter interface {
	Delete(ctx context.Context, brandID, productID, requesterID uuid.UUID) error
}

// NewProductDeleteHandler returns an HTTP handler for removing a product
// under the caller's brand.
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Param productID path string true "Product ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the brand owner"
// @Failure 404 {object} handlers.ErrorResponse "Brand or product not found"
// @Router /brands/{brandID}/products/{productID} [delete]
func NewProductDeleteHandler(svc ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		brandID, ok := uuidParam(w, r, "brandID")
		if !ok {
			return
		}
		productID, ok := uuidParam(w, r, "productID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), brandID, productID, claims.UserID); err != nil {
			respondServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
