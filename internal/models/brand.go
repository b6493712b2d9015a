package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// BrandDB represents a brand profile record in the database.
type BrandDB struct {
	BrandID                uuid.UUID `json:"id" db:"brand_id"`
	OwnerID                uuid.UUID `json:"owner_id" db:"owner_id"`
	Name                   string    `json:"name" db:"name"`
	Description            *string   `json:"description,omitempty" db:"description"`
	Industry               *string   `json:"industry,omitempty" db:"industry"`
	Website                *string   `json:"website,omitempty" db:"website"`
	Email                  *string   `json:"email,omitempty" db:"email"`
	Phone                  *string   `json:"phone,omitempty" db:"phone"`
	Address                *string   `json:"address,omitempty" db:"address"`
	City                   *string   `json:"city,omitempty" db:"city"`
	State                  *string   `json:"state,omitempty" db:"state"`
	LogoURL                *string   `json:"logo_url,omitempty" db:"logo_url"`
	ProfileCompletionScore int       `json:"profile_completion_score" db:"profile_completion_score"`
	IsVerified             bool      `json:"is_verified" db:"is_verified"`
	IsPublic               bool      `json:"is_public" db:"is_public"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time `json:"updated_at" db:"updated_at"`
}

// completionTrackedFields is the number of fields counted towards the
// profile completion score: name, description, industry, website, email,
// phone, address, city, state.
const completionTrackedFields = 9

// CompletionScore recomputes the profile completion percentage from the
// tracked field set. Recomputation over the same values is idempotent.
func (b *BrandDB) CompletionScore() int {
	filled := 0
	if b.Name != "" {
		filled++
	}
	for _, f := range []*string{
		b.Description, b.Industry, b.Website, b.Email,
		b.Phone, b.Address, b.City, b.State,
	} {
		if f != nil && *f != "" {
			filled++
		}
	}
	return int(math.Round(100 * float64(filled) / float64(completionTrackedFields)))
}

// BrandUpdate carries the partial-update fields for a brand.
// Nil fields keep their stored value.
type BrandUpdate struct {
	Name        *string
	Description *string
	Industry    *string
	Website     *string
	Email       *string
	Phone       *string
	Address     *string
	City        *string
	State       *string
	LogoURL     *string
	IsPublic    *bool
}
