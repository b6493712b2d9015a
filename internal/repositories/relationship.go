package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/models"
)

const relationshipColumns = `
	relationship_id, brand_id, retailer_id, status, partnership_type,
	started_date, notes, priority, created_by, created_at, updated_at
`

// priorityOrdinal orders high > normal > low. Lexical string comparison
// would sort these wrong, so the ordinal is explicit.
const priorityOrdinal = `
	CASE r.priority WHEN 'high' THEN 3 WHEN 'normal' THEN 2 WHEN 'low' THEN 1 ELSE 0 END
`

type RelationshipReadRepository struct {
	db *sqlx.DB
}

func NewRelationshipReadRepository(db *sqlx.DB) *RelationshipReadRepository {
	return &RelationshipReadRepository{db: db}
}

// GetByID returns the relationship with the given id, or nil.
func (r *RelationshipReadRepository) GetByID(ctx context.Context, relationshipID uuid.UUID) (*models.RelationshipDB, error) {
	const query = `
		SELECT ` + relationshipColumns + `
		FROM relationships
		WHERE relationship_id = $1
		LIMIT 1
	`

	var rel models.RelationshipDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &rel, query, relationshipID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{relationshipID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// GetByPair returns the relationship for a (brand, retailer) dyad, or nil.
func (r *RelationshipReadRepository) GetByPair(ctx context.Context, brandID, retailerID uuid.UUID) (*models.RelationshipDB, error) {
	const query = `
		SELECT ` + relationshipColumns + `
		FROM relationships
		WHERE brand_id = $1 AND retailer_id = $2
		LIMIT 1
	`

	var rel models.RelationshipDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &rel, query, brandID, retailerID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID, retailerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// ListForRetailer returns the retailer's relationships joined with brand
// and brand-owner info, highest priority first.
func (r *RelationshipReadRepository) ListForRetailer(ctx context.Context, retailerID uuid.UUID) ([]models.RetailerRelationshipView, error) {
	const query = `
		SELECT
			r.relationship_id, r.brand_id, r.retailer_id, r.status,
			r.partnership_type, r.started_date, r.notes, r.priority,
			r.created_by, r.created_at, r.updated_at,
			b.name AS brand_name,
			b.industry AS brand_industry,
			b.logo_url AS brand_logo_url,
			u.first_name AS owner_first_name,
			u.last_name AS owner_last_name,
			u.email AS owner_email
		FROM relationships r
		JOIN brands b ON b.brand_id = r.brand_id
		JOIN users u ON u.user_id = b.owner_id
		WHERE r.retailer_id = $1
		ORDER BY ` + priorityOrdinal + ` DESC, r.updated_at DESC
	`

	views := []models.RetailerRelationshipView{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &views, query, retailerID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{retailerID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListForBrandOwner returns incoming relationships for the brand owned by
// the given user, joined with retailer-user info, highest priority first.
func (r *RelationshipReadRepository) ListForBrandOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BrandRelationshipView, error) {
	const query = `
		SELECT
			r.relationship_id, r.brand_id, r.retailer_id, r.status,
			r.partnership_type, r.started_date, r.notes, r.priority,
			r.created_by, r.created_at, r.updated_at,
			u.first_name AS retailer_first_name,
			u.last_name AS retailer_last_name,
			u.email AS retailer_email,
			u.company_name AS retailer_company
		FROM relationships r
		JOIN brands b ON b.brand_id = r.brand_id
		JOIN users u ON u.user_id = r.retailer_id
		WHERE b.owner_id = $1
		ORDER BY ` + priorityOrdinal + ` DESC, r.updated_at DESC
	`

	views := []models.BrandRelationshipView{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &views, query, ownerID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{ownerID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return views, nil
}

type RelationshipWriteRepository struct {
	db *sqlx.DB
}

func NewRelationshipWriteRepository(db *sqlx.DB) *RelationshipWriteRepository {
	return &RelationshipWriteRepository{db: db}
}

// Create inserts a new relationship. The UNIQUE (brand_id, retailer_id)
// constraint backstops the duplicate check; callers detect it with
// IsUniqueViolation.
func (r *RelationshipWriteRepository) Create(ctx context.Context, rel *models.RelationshipDB) error {
	const query = `
		INSERT INTO relationships (
			relationship_id, brand_id, retailer_id, status, partnership_type,
			started_date, notes, priority, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	args := []any{
		rel.RelationshipID, rel.BrandID, rel.RetailerID, rel.Status,
		rel.PartnershipType, rel.StartedDate, rel.Notes, rel.Priority,
		rel.CreatedBy,
	}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}

// Update applies a partial update, but only when the row belongs to the
// given retailer. Returns nil when no row matched, so ownership failures
// and missing rows are indistinguishable to callers.
func (r *RelationshipWriteRepository) Update(ctx context.Context, relationshipID, retailerID uuid.UUID, upd models.RelationshipUpdate) (*models.RelationshipDB, error) {
	const query = `
		UPDATE relationships SET
			status           = COALESCE($3, status),
			partnership_type = COALESCE($4, partnership_type),
			started_date     = COALESCE($5, started_date),
			notes            = COALESCE($6, notes),
			priority         = COALESCE($7, priority),
			updated_at       = NOW()
		WHERE relationship_id = $1 AND retailer_id = $2
		RETURNING ` + relationshipColumns

	args := []any{
		relationshipID, retailerID, upd.Status, upd.PartnershipType,
		upd.StartedDate, upd.Notes, upd.Priority,
	}

	var rel models.RelationshipDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &rel, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// Delete hard-deletes the relationship when it belongs to the retailer.
// Reports whether a row was removed.
func (r *RelationshipWriteRepository) Delete(ctx context.Context, relationshipID, retailerID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM relationships
		WHERE relationship_id = $1 AND retailer_id = $2
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, relationshipID, retailerID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{relationshipID, retailerID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
