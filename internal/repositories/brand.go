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

const brandColumns = `
	brand_id, owner_id, name, description, industry, website, email, phone,
	address, city, state, logo_url, profile_completion_score, is_verified,
	is_public, created_at, updated_at
`

// brandListFilter is shared by List and Count so both always apply the
// same visibility and search predicates.
const brandListFilter = `
	WHERE is_public = TRUE
	  AND ($1::VARCHAR IS NULL OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	  AND ($2::VARCHAR IS NULL OR industry = $2)
`

type BrandReadRepository struct {
	db *sqlx.DB
}

func NewBrandReadRepository(db *sqlx.DB) *BrandReadRepository {
	return &BrandReadRepository{db: db}
}

// GetByID returns the brand with the given id, or nil if absent.
func (r *BrandReadRepository) GetByID(ctx context.Context, brandID uuid.UUID) (*models.BrandDB, error) {
	const query = `
		SELECT ` + brandColumns + `
		FROM brands
		WHERE brand_id = $1
		LIMIT 1
	`

	var brand models.BrandDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &brand, query, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetByOwnerID returns the brand owned by the given user, or nil.
func (r *BrandReadRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.BrandDB, error) {
	const query = `
		SELECT ` + brandColumns + `
		FROM brands
		WHERE owner_id = $1
		LIMIT 1
	`

	var brand models.BrandDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &brand, query, ownerID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// List returns a page of public brands matching the filter, ordered by
// completion score and then creation time, both descending. The tie-break
// on created_at keeps the ordering deterministic.
func (r *BrandReadRepository) List(ctx context.Context, search, industry *string, limit, offset int) ([]models.BrandDB, error) {
	const query = `
		SELECT ` + brandColumns + `
		FROM brands
	` + brandListFilter + `
		ORDER BY profile_completion_score DESC, created_at DESC
		LIMIT $3 OFFSET $4
	`
	args := []any{search, industry, limit, offset}

	brands := []models.BrandDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &brands, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return brands, nil
}

// Count returns the total number of public brands matching the filter.
func (r *BrandReadRepository) Count(ctx context.Context, search, industry *string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM brands
	` + brandListFilter

	var total int
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, query, search, industry)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{search, industry},
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return total, nil
}

// Industries returns the distinct non-empty industries of public brands.
func (r *BrandReadRepository) Industries(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT industry
		FROM brands
		WHERE is_public = TRUE
		  AND industry IS NOT NULL
		  AND industry <> ''
		ORDER BY industry
	`

	industries := []string{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &industries, query)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return industries, nil
}

type BrandWriteRepository struct {
	db *sqlx.DB
}

func NewBrandWriteRepository(db *sqlx.DB) *BrandWriteRepository {
	return &BrandWriteRepository{db: db}
}

// Create inserts a new brand row.
func (r *BrandWriteRepository) Create(ctx context.Context, brand *models.BrandDB) error {
	const query = `
		INSERT INTO brands (
			brand_id, owner_id, name, description, industry, website, email,
			phone, address, city, state, logo_url, profile_completion_score,
			is_verified, is_public, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
	`
	args := []any{
		brand.BrandID, brand.OwnerID, brand.Name, brand.Description, brand.Industry,
		brand.Website, brand.Email, brand.Phone, brand.Address, brand.City,
		brand.State, brand.LogoURL, brand.ProfileCompletionScore,
		brand.IsVerified, brand.IsPublic,
	}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}

// Update writes the merged brand fields and the recomputed completion
// score. The caller resolves the COALESCE merge before calling.
func (r *BrandWriteRepository) Update(ctx context.Context, brand *models.BrandDB) error {
	const query = `
		UPDATE brands SET
			name = $2, description = $3, industry = $4, website = $5,
			email = $6, phone = $7, address = $8, city = $9, state = $10,
			logo_url = $11, is_public = $12, profile_completion_score = $13,
			updated_at = NOW()
		WHERE brand_id = $1
	`
	args := []any{
		brand.BrandID, brand.Name, brand.Description, brand.Industry, brand.Website,
		brand.Email, brand.Phone, brand.Address, brand.City, brand.State,
		brand.LogoURL, brand.IsPublic, brand.ProfileCompletionScore,
	}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}
