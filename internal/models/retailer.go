package models

import (
	"time"

	"github.com/google/uuid"
)

// RetailerDB represents a retailer profile record in the database.
// Retailer profiles are created at registration and are informational only.
type RetailerDB struct {
	RetailerID uuid.UUID `json:"id" db:"retailer_id"`
	OwnerID    uuid.UUID `json:"owner_id" db:"owner_id"`
	Name       string    `json:"name" db:"name"`
	Industry   *string   `json:"industry,omitempty" db:"industry"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
