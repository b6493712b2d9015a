package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/validation"
)

// ProductUpdater defines the interface that the product service must
// implement.
type ProductUpdater interface {
	Update(ctx context.Context, brandID, productID, requesterID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error)
}

// ProductUpdateRequest represents the JSON body for a product update.
// Absent fields keep their stored value.
// swagger:model ProductUpdateRequest
type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	SKU         *string  `json:"sku,omitempty" validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// NewProductUpdateHandler returns an HTTP handler for updating a product
// under the caller's brand.
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Param productID path string true "Product ID"
// @Param productUpdateRequest body handlers.ProductUpdateRequest true "Fields to update"
// @Success 200 {object} models.ProductDB "Updated product"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the brand owner"
// @Failure 404 {object} handlers.ErrorResponse "Brand or product not found"
// @Router /brands/{brandID}/products/{productID} [put]
func NewProductUpdateHandler(svc ProductUpdater) http.HandlerFunc {
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

		var req ProductUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		product, err := svc.Update(r.Context(), brandID, productID, claims.UserID, models.ProductUpdate{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			SKU:         req.SKU,
			Price:       req.Price,
			IsActive:    req.IsActive,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, product)
	}
}
