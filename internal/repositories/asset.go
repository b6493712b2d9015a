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

const assetColumns = `
	asset_id, brand_id, filename, original_name, mime_type, size_bytes, url,
	description, category, permission_level, download_count, is_featured,
	uploaded_by, created_at
`

type AssetReadRepository struct {
	db *sqlx.DB
}

func NewAssetReadRepository(db *sqlx.DB) *AssetReadRepository {
	return &AssetReadRepository{db: db}
}

// GetByID returns the asset scoped to a brand, or nil.
func (r *AssetReadRepository) GetByID(ctx context.Context, assetID, brandID uuid.UUID) (*models.AssetDB, error) {
	const query = `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE asset_id = $1 AND brand_id = $2
		LIMIT 1
	`

	var asset models.AssetDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &asset, query, assetID, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{assetID, brandID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListByBrand returns every asset of a brand, newest first.
func (r *AssetReadRepository) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.AssetDB, error) {
	const query = `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE brand_id = $1
		ORDER BY created_at DESC
	`

	assets := []models.AssetDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &assets, query, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return assets, nil
}

// ListVisibleByBrand returns the assets non-owners may see: public and
// partners_only levels, never private.
func (r *AssetReadRepository) ListVisibleByBrand(ctx context.Context, brandID uuid.UUID) ([]models.AssetDB, error) {
	const query = `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE brand_id = $1
		  AND permission_level IN ('public', 'partners_only')
		ORDER BY created_at DESC
	`

	assets := []models.AssetDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &assets, query, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return assets, nil
}

type AssetWriteRepository struct {
	db *sqlx.DB
}

func NewAssetWriteRepository(db *sqlx.DB) *AssetWriteRepository {
	return &AssetWriteRepository{db: db}
}

// Create inserts a new asset row.
func (r *AssetWriteRepository) Create(ctx context.Context, asset *models.AssetDB) error {
	const query = `
		INSERT INTO assets (
			asset_id, brand_id, filename, original_name, mime_type, size_bytes,
			url, description, category, permission_level, download_count,
			is_featured, uploaded_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
	`
	args := []any{
		asset.AssetID, asset.BrandID, asset.Filename, asset.OriginalName,
		asset.MimeType, asset.SizeBytes, asset.URL, asset.Description,
		asset.Category, asset.PermissionLevel, asset.DownloadCount,
		asset.IsFeatured, asset.UploadedBy,
	}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes the asset row scoped to a brand. Reports whether a row
// was removed.
func (r *AssetWriteRepository) Delete(ctx context.Context, assetID, brandID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM assets
		WHERE asset_id = $1 AND brand_id = $2
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, assetID, brandID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{assetID, brandID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
