package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rollodex/brandcentral/internal/logger"
)

type AnalyticsReadRepository struct {
	db *sqlx.DB
}

func NewAnalyticsReadRepository(db *sqlx.DB) *AnalyticsReadRepository {
	return &AnalyticsReadRepository{db: db}
}

// CountPublicBrands returns the number of discoverable brands.
func (r *AnalyticsReadRepository) CountPublicBrands(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM brands WHERE is_public = TRUE`

	var total int
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, query)

	logger.Log.Debugw("query executed", "query", collapse(query), "error", err)

	return total, err
}

// CountRelationshipsByRetailer returns the retailer's total and active
// relationship counts.
func (r *AnalyticsReadRepository) CountRelationshipsByRetailer(ctx context.Context, retailerID uuid.UUID) (total, active int, err error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active')
		FROM relationships
		WHERE retailer_id = $1
	`

	row := ext(ctx, r.db).QueryRowxContext(ctx, query, retailerID)
	err = row.Scan(&total, &active)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{retailerID},
		"error", err,
	)

	return total, active, err
}

// CountAssetsByBrand returns a brand's asset count.
func (r *AnalyticsReadRepository) CountAssetsByBrand(ctx context.Context, brandID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM assets WHERE brand_id = $1`

	var total int
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, query, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID},
		"error", err,
	)

	return total, err
}

// CountActiveProductsByBrand returns a brand's active product count.
func (r *AnalyticsReadRepository) CountActiveProductsByBrand(ctx context.Context, brandID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM products WHERE brand_id = $1 AND is_active = TRUE`

	var total int
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, query, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID},
		"error", err,
	)

	return total, err
}

// CountRelationshipsByBrandStatus returns incoming relationship counts
// grouped by status for a brand.
func (r *AnalyticsReadRepository) CountRelationshipsByBrandStatus(ctx context.Context, brandID uuid.UUID) (map[string]int, error) {
	const query = `
		SELECT status, COUNT(*)
		FROM relationships
		WHERE brand_id = $1
		GROUP BY status
	`

	rows, err := ext(ctx, r.db).QueryxContext(ctx, query, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
