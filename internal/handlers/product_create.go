package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/services"
	"github.com/rollodex/brandcentral/internal/validation"
)

// ProductCreator defines the interface that the product service must
// implement.
type ProductCreator interface {
	Create(ctx context.Context, brandID, requesterID uuid.UUID, p services.ProductCreateParams) (*models.ProductDB, error)
}

// ProductCreateRequest represents the JSON body for adding a product
// swagger:model ProductCreateRequest
type ProductCreateRequest struct {
	// Product name
	// required: true
	Name string `json:"name" validate:"required,max=200"`

	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	SKU         *string  `json:"sku,omitempty" validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// NewProductCreateHandler returns an HTTP handler for adding a product to
// the caller's brand.
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Param productCreateRequest body handlers.ProductCreateRequest true "Product to add"
// @Success 201 {object} models.ProductDB "Created product"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the brand owner"
// @Failure 404 {object} handlers.ErrorResponse "Brand not found"
// @Router /brands/{brandID}/products [post]
func NewProductCreateHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		brandID, ok := uuidParam(w, r, "brandID")
		if !ok {
			return
		}

		var req ProductCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		product, err := svc.Create(r.Context(), brandID, claims.UserID, services.ProductCreateParams{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			SKU:         req.SKU,
			Price:       req.Price,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, product)
	}
}
