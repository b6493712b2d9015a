package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/models"
)

type ActivityWriteRepository struct {
	db *sqlx.DB
}

func NewActivityWriteRepository(db *sqlx.DB) *ActivityWriteRepository {
	return &ActivityWriteRepository{db: db}
}

// Record appends an audit row. The application never reads these back.
func (r *ActivityWriteRepository) Record(ctx context.Context, activity *models.ActivityDB) error {
	const query = `
		INSERT INTO activity_log (
			activity_id, user_id, action, entity_type, entity_id, metadata,
			ip, user_agent, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{
		activity.ActivityID, activity.UserID, activity.Action,
		activity.EntityType, activity.EntityID, activity.Metadata,
		activity.IP, activity.UserAgent,
	}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}
