package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductDB represents a catalog entry under a brand.
type ProductDB struct {
	ProductID   uuid.UUID `json:"id" db:"product_id"`
	BrandID     uuid.UUID `json:"brand_id" db:"brand_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Category    *string   `json:"category,omitempty" db:"category"`
	SKU         *string   `json:"sku,omitempty" db:"sku"`
	Price       *float64  `json:"price,omitempty" db:"price"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductUpdate carries the partial-update fields for a product.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	SKU         *string
	Price       *float64
	IsActive    *bool
}
