package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/models"
)

type RetailerWriteRepository struct {
	db *sqlx.DB
}

func NewRetailerWriteRepository(db *sqlx.DB) *RetailerWriteRepository {
	return &RetailerWriteRepository{db: db}
}

// Create inserts a retailer profile row. Retailer profiles are written at
// registration and have no further CRUD surface.
func (r *RetailerWriteRepository) Create(ctx context.Context, retailer *models.RetailerDB) error {
	const query = `
		INSERT INTO retailers (retailer_id, owner_id, name, industry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{retailer.RetailerID, retailer.OwnerID, retailer.Name, retailer.Industry}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}
