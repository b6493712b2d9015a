package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActivityDB is an append-only audit record. The application writes these
// rows and never reads them back.
type ActivityDB struct {
	ActivityID uuid.UUID       `json:"id" db:"activity_id"`
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`
	Action     string          `json:"action" db:"action"`
	EntityType string          `json:"entity_type" db:"entity_type"`
	EntityID   *uuid.UUID      `json:"entity_id,omitempty" db:"entity_id"`
	Metadata   json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	IP         string          `json:"ip" db:"ip"`
	UserAgent  string          `json:"user_agent" db:"user_agent"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}
