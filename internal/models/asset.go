package models

import (
	"time"

	"github.com/google/uuid"
)

// Asset permission levels.
const (
	PermissionPublic       = "public"
	PermissionPartnersOnly = "partners_only"
	PermissionPrivate      = "private"
)

// IsValidPermissionLevel reports whether p is a legal permission level.
func IsValidPermissionLevel(p string) bool {
	switch p {
	case PermissionPublic, PermissionPartnersOnly, PermissionPrivate:
		return true
	}
	return false
}

// AssetDB represents an uploaded brand file.
type AssetDB struct {
	AssetID         uuid.UUID `json:"id" db:"asset_id"`
	BrandID         uuid.UUID `json:"brand_id" db:"brand_id"`
	Filename        string    `json:"filename" db:"filename"`
	OriginalName    string    `json:"original_name" db:"original_name"`
	MimeType        string    `json:"mime_type" db:"mime_type"`
	SizeBytes       int64     `json:"size_bytes" db:"size_bytes"`
	URL             string    `json:"url" db:"url"`
	Description     *string   `json:"description,omitempty" db:"description"`
	Category        *string   `json:"category,omitempty" db:"category"`
	PermissionLevel string    `json:"permission_level" db:"permission_level"`
	DownloadCount   int       `json:"download_count" db:"download_count"`
	IsFeatured      bool      `json:"is_featured" db:"is_featured"`
	UploadedBy      uuid.UUID `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
