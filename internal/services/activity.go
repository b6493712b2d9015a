package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/middlewares"
	"github.com/rollodex/brandcentral/internal/models"
)

// ActivityWriter defines the append operation for the audit log.
type ActivityWriter interface {
	Record(ctx context.Context, activity *models.ActivityDB) error
}

// newActivity builds an audit row, pulling the caller address and user
// agent from the request context.
func newActivity(ctx context.Context, userID uuid.UUID, action, entityType string, entityID *uuid.UUID, meta map[string]any) *models.ActivityDB {
	var metadata json.RawMessage
	if len(meta) > 0 {
		metadata, _ = json.Marshal(meta)
	}

	ip, userAgent := middlewares.ClientInfoFromContext(ctx)

	return &models.ActivityDB{
		ActivityID: uuid.New(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		IP:         ip,
		UserAgent:  userAgent,
	}
}

// recordActivity appends an audit row best-effort: failures are logged and
// never fail the surrounding operation. Registration goes through the
// ActivityWriter directly instead, so the row joins the transaction.
func recordActivity(ctx context.Context, w ActivityWriter, userID uuid.UUID, action, entityType string, entityID *uuid.UUID, meta map[string]any) {
	if err := w.Record(ctx, newActivity(ctx, userID, action, entityType, entityID, meta)); err != nil {
		logger.Log.Errorw("failed to record activity",
			"action", action,
			"entity_type", entityType,
			"err", err,
		)
	}
}
