package models

import (
	"time"

	"github.com/google/uuid"
)

// Relationship statuses. The status field is free-form within this set:
// any status may be set directly, no transition graph is enforced.
const (
	StatusProspective = "prospective"
	StatusPending     = "pending"
	StatusActive      = "active"
	StatusInactive    = "inactive"
)

// Relationship priorities. Ordering is by ordinal (high > normal > low),
// never by lexical comparison of the strings.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// IsValidStatus reports whether s is one of the four legal statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusProspective, StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

// IsValidPriority reports whether p is one of the three legal priorities.
func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// RelationshipDB represents a brand/retailer partnership record.
// At most one relationship exists per (brand_id, retailer_id) pair.
type RelationshipDB struct {
	RelationshipID  uuid.UUID  `json:"id" db:"relationship_id"`
	BrandID         uuid.UUID  `json:"brand_id" db:"brand_id"`
	RetailerID      uuid.UUID  `json:"retailer_id" db:"retailer_id"`
	Status          string     `json:"status" db:"status"`
	PartnershipType *string    `json:"partnership_type,omitempty" db:"partnership_type"`
	StartedDate     *time.Time `json:"started_date,omitempty" db:"started_date"`
	Notes           *string    `json:"notes,omitempty" db:"notes"`
	Priority        string     `json:"priority" db:"priority"`
	CreatedBy       uuid.UUID  `json:"created_by" db:"created_by"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// RetailerRelationshipView is a relationship joined with brand and
// brand-owner info, as returned to retailer-side users.
type RetailerRelationshipView struct {
	RelationshipDB
	BrandName      string  `json:"brand_name" db:"brand_name"`
	BrandIndustry  *string `json:"brand_industry,omitempty" db:"brand_industry"`
	BrandLogoURL   *string `json:"brand_logo_url,omitempty" db:"brand_logo_url"`
	OwnerFirstName string  `json:"owner_first_name" db:"owner_first_name"`
	OwnerLastName  string  `json:"owner_last_name" db:"owner_last_name"`
	OwnerEmail     string  `json:"owner_email" db:"owner_email"`
}

// BrandRelationshipView is a relationship joined with retailer-user info,
// as returned to brand-side users.
type BrandRelationshipView struct {
	RelationshipDB
	RetailerFirstName string `json:"retailer_first_name" db:"retailer_first_name"`
	RetailerLastName  string `json:"retailer_last_name" db:"retailer_last_name"`
	RetailerEmail     string `json:"retailer_email" db:"retailer_email"`
	RetailerCompany   string `json:"retailer_company" db:"retailer_company"`
}

// RelationshipUpdate carries the partial-update fields for a relationship.
type RelationshipUpdate struct {
	Status          *string
	PartnershipType *string
	StartedDate     *time.Time
	Notes           *string
	Priority        *string
}
