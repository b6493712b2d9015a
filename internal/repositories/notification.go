package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rollodex/brandcentral/internal/logger"
)

type NotificationPreferencesWriteRepository struct {
	db *sqlx.DB
}

func NewNotificationPreferencesWriteRepository(db *sqlx.DB) *NotificationPreferencesWriteRepository {
	return &NotificationPreferencesWriteRepository{db: db}
}

// CreateDefaults inserts the default notification preferences row for a
// freshly registered user.
func (r *NotificationPreferencesWriteRepository) CreateDefaults(ctx context.Context, userID uuid.UUID) error {
	const query = `
		INSERT INTO notification_preferences (
			user_id, email_updates, partner_requests, product_news, created_at, updated_at
		)
		VALUES ($1, TRUE, TRUE, TRUE, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{userID},
		"error", err,
	)

	return err
}
