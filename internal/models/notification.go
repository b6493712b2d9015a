package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferencesDB holds the per-user notification toggles.
// A default row is inserted at registration.
type NotificationPreferencesDB struct {
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	EmailUpdates    bool      `json:"email_updates" db:"email_updates"`
	PartnerRequests bool      `json:"partner_requests" db:"partner_requests"`
	ProductNews     bool      `json:"product_news" db:"product_news"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
