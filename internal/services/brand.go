package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
)

// Directory pagination bounds.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var (
	// ErrBrandNotFound is returned for absent brands, and equally for
	// private brands requested by a non-owner, so private profiles are
	// not discoverable by probing.
	ErrBrandNotFound = errors.New("brand not found")

	// ErrForbidden is returned when the requester lacks rights on an
	// existing resource.
	ErrForbidden = errors.New("forbidden")
)

// BrandReader reads brand records for the directory.
type BrandReader interface {
	GetByID(ctx context.Context, brandID uuid.UUID) (*models.BrandDB, error)
	List(ctx context.Context, search, industry *string, limit, offset int) ([]models.BrandDB, error)
	Count(ctx context.Context, search, industry *string) (int, error)
	Industries(ctx context.Context) ([]string, error)
}

// BrandWriter persists full brand records.
type BrandWriter interface {
	Update(ctx context.Context, brand *models.BrandDB) error
}

// ProductReader lists a brand's catalog.
type ProductReader interface {
	ListActiveByBrand(ctx context.Context, brandID uuid.UUID) ([]models.ProductDB, error)
}

// BrandService implements the brand directory and profile management.
type BrandService struct {
	reader   BrandReader
	writer   BrandWriter
	products ProductReader
	assets   AssetReader
	activity ActivityWriter
}

func NewBrandService(
	reader BrandReader,
	writer BrandWriter,
	products ProductReader,
	assets AssetReader,
	activity ActivityWriter,
) *BrandService {
	return &BrandService{
		reader:   reader,
		writer:   writer,
		products: products,
		assets:   assets,
		activity: activity,
	}
}

// BrandFilter narrows the directory listing. Empty values match all.
type BrandFilter struct {
	Search   string
	Industry string
}

// List returns the public brand directory page, ordered by completion
// score then recency.
func (svc *BrandService) List(ctx context.Context, filter BrandFilter, page, limit int) ([]models.BrandDB, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	search := optional(filter.Search)
	industry := optional(filter.Industry)

	total, err := svc.reader.Count(ctx, search, industry)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	brands, err := svc.reader.List(ctx, search, industry, limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return brands, models.NewPagination(page, limit, total), nil
}

// BrandDetail is a brand with its visible catalog and assets.
type BrandDetail struct {
	Brand    models.BrandDB    `json:"brand"`
	Products []models.ProductDB `json:"products"`
	Assets   []models.AssetDB  `json:"assets"`
}

// Get returns a brand's detail. Non-owners only see public brands and
// only their public and partners-only assets.
func (svc *BrandService) Get(ctx context.Context, brandID, requesterID uuid.UUID) (*BrandDetail, error) {
	brand, err := svc.reader.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}

	isOwner := brand.OwnerID == requesterID
	if !brand.IsPublic && !isOwner {
		return nil, ErrBrandNotFound
	}

	products, err := svc.products.ListActiveByBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	var assets []models.AssetDB
	if isOwner {
		assets, err = svc.assets.ListByBrand(ctx, brandID)
	} else {
		assets, err = svc.assets.ListVisibleByBrand(ctx, brandID)
	}
	if err != nil {
		return nil, err
	}

	return &BrandDetail{Brand: *brand, Products: products, Assets: assets}, nil
}

// Update applies the non-nil fields, recomputes the completion score and
// writes the full record. Only the owner may update.
func (svc *BrandService) Update(ctx context.Context, brandID, requesterID uuid.UUID, upd models.BrandUpdate) (*models.BrandDB, error) {
	brand, err := svc.reader.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}
	if brand.OwnerID != requesterID {
		return nil, ErrForbidden
	}

	applyBrandUpdate(brand, upd)
	brand.ProfileCompletionScore = brand.CompletionScore()

	if err := svc.writer.Update(ctx, brand); err != nil {
		return nil, err
	}

	id := brandID
	recordActivity(ctx, svc.activity, requesterID, "brand_updated", "brand", &id, map[string]any{
		"profile_completion_score": brand.ProfileCompletionScore,
	})

	return brand, nil
}

// Industries returns the distinct industries across public brands.
func (svc *BrandService) Industries(ctx context.Context) ([]string, error) {
	return svc.reader.Industries(ctx)
}

func applyBrandUpdate(brand *models.BrandDB, upd models.BrandUpdate) {
	if upd.Name != nil {
		brand.Name = *upd.Name
	}
	if upd.Description != nil {
		brand.Description = upd.Description
	}
	if upd.Industry != nil {
		brand.Industry = upd.Industry
	}
	if upd.Website != nil {
		brand.Website = upd.Website
	}
	if upd.Email != nil {
		brand.Email = upd.Email
	}
	if upd.Phone != nil {
		brand.Phone = upd.Phone
	}
	if upd.Address != nil {
		brand.Address = upd.Address
	}
	if upd.City != nil {
		brand.City = upd.City
	}
	if upd.State != nil {
		brand.State = upd.State
	}
	if upd.LogoURL != nil {
		brand.LogoURL = upd.LogoURL
	}
	if upd.IsPublic != nil {
		brand.IsPublic = *upd.IsPublic
	}
}

// optional maps the empty string to a NULL bind.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
