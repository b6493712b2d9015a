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

const productColumns = `
	product_id, brand_id, name, description, category, sku, price,
	is_active, created_at, updated_at
`

type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// ListActiveByBrand returns a brand's active catalog entries.
func (r *ProductReadRepository) ListActiveByBrand(ctx context.Context, brandID uuid.UUID) ([]models.ProductDB, error) {
	const query = `
		SELECT ` + productColumns + `
		FROM products
		WHERE brand_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`

	products := []models.ProductDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &products, query, brandID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{brandID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return products, nil
}

type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// Create inserts a new product row.
func (r *ProductWriteRepository) Create(ctx context.Context, product *models.ProductDB) error {
	const query = `
		INSERT INTO products (
			product_id, brand_id, name, description, category, sku, price,
			is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	args := []any{
		product.ProductID, product.BrandID, product.Name, product.Description,
		product.Category, product.SKU, product.Price, product.IsActive,
	}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}

// Update applies a partial update scoped to a brand. Returns nil when no
// row matched.
func (r *ProductWriteRepository) Update(ctx context.Context, productID, brandID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error) {
	const query = `
		UPDATE products SET
			name        = COALESCE($3, name),
			description = COALESCE($4, description),
			category    = COALESCE($5, category),
			sku         = COALESCE($6, sku),
			price       = COALESCE($7, price),
			is_active   = COALESCE($8, is_active),
			updated_at  = NOW()
		WHERE product_id = $1 AND brand_id = $2
		RETURNING ` + productColumns

	args := []any{
		productID, brandID, upd.Name, upd.Description, upd.Category,
		upd.SKU, upd.Price, upd.IsActive,
	}

	var product models.ProductDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &product, query, args...)

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
	return &product, nil
}

// Delete removes the product row scoped to a brand. Reports whether a row
// was removed.
func (r *ProductWriteRepository) Delete(ctx context.Context, productID, brandID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM products
		WHERE product_id = $1 AND brand_id = $2
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, productID, brandID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{productID, brandID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
