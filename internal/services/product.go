package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
)

// ErrProductNotFound is returned when the product does not exist under
// the brand.
var ErrProductNotFound = errors.New("product not found")

// ProductWriter persists product records.
type ProductWriter interface {
	Create(ctx context.Context, product *models.ProductDB) error
	Update(ctx context.Context, productID, brandID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error)
	Delete(ctx context.Context, productID, brandID uuid.UUID) (bool, error)
}

// ProductService implements catalog management under a brand.
type ProductService struct {
	writer   ProductWriter
	brands   BrandGetter
	activity ActivityWriter
}

func NewProductService(writer ProductWriter, brands BrandGetter, activity ActivityWriter) *ProductService {
	return &ProductService{writer: writer, brands: brands, activity: activity}
}

// ProductCreateParams carries the validated creation input.
type ProductCreateParams struct {
	Name        string
	Description *string
	Category    *string
	SKU         *string
	Price       *float64
}

// Create adds a product to the requester's brand. Only the owner may
// manage the catalog.
func (svc *ProductService) Create(ctx context.Context, brandID, requesterID uuid.UUID, p ProductCreateParams) (*models.ProductDB, error) {
	if err := svc.requireOwner(ctx, brandID, requesterID); err != nil {
		return nil, err
	}

	product := &models.ProductDB{
		ProductID:   uuid.New(),
		BrandID:     brandID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		SKU:         p.SKU,
		Price:       p.Price,
		IsActive:    true,
	}
	if err := svc.writer.Create(ctx, product); err != nil {
		return nil, err
	}

	id := product.ProductID
	recordActivity(ctx, svc.activity, requesterID, "product_created", "product", &id, nil)

	return product, nil
}

// Update applies the non-nil fields to the brand's product.
func (svc *ProductService) Update(ctx context.Context, brandID, productID, requesterID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error) {
	if err := svc.requireOwner(ctx, brandID, requesterID); err != nil {
		return nil, err
	}

	product, err := svc.writer.Update(ctx, productID, brandID, upd)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	id := productID
	recordActivity(ctx, svc.activity, requesterID, "product_updated", "product", &id, nil)

	return product, nil
}

// Delete removes the brand's product.
func (svc *ProductService) Delete(ctx context.Context, brandID, productID, requesterID uuid.UUID) error {
	if err := svc.requireOwner(ctx, brandID, requesterID); err != nil {
		return err
	}

	deleted, err := svc.writer.Delete(ctx, productID, brandID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}

	id := productID
	recordActivity(ctx, svc.activity, requesterID, "product_deleted", "product", &id, nil)

	return nil
}

func (svc *ProductService) requireOwner(ctx context.Context, brandID, requesterID uuid.UUID) error {
	brand, err := svc.brands.GetByID(ctx, brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrBrandNotFound
	}
	if brand.OwnerID != requesterID {
		return ErrForbidden
	}
	return nil
}
