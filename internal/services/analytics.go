package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
)

// AnalyticsReader aggregates counts for the dashboard.
type AnalyticsReader interface {
	CountPublicBrands(ctx context.Context) (int, error)
	CountRelationshipsByRetailer(ctx context.Context, retailerID uuid.UUID) (total, active int, err error)
	CountAssetsByBrand(ctx context.Context, brandID uuid.UUID) (int, error)
	CountActiveProductsByBrand(ctx context.Context, brandID uuid.UUID) (int, error)
	CountRelationshipsByBrandStatus(ctx context.Context, brandID uuid.UUID) (map[string]int, error)
}

// BrandOwnerGetter resolves the brand a user owns.
type BrandOwnerGetter interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.BrandDB, error)
}

// AnalyticsService implements the role-specific dashboard.
type AnalyticsService struct {
	reader AnalyticsReader
	brands BrandOwnerGetter
}

func NewAnalyticsService(reader AnalyticsReader, brands BrandOwnerGetter) *AnalyticsService {
	return &AnalyticsService{reader: reader, brands: brands}
}

// Dashboard carries the aggregate counts for one side of the market.
// Counts not applicable to the caller's role are omitted.
type Dashboard struct {
	Role                  string         `json:"role"`
	TotalBrands           *int           `json:"total_brands,omitempty"`
	TotalRelationships    *int           `json:"total_relationships,omitempty"`
	ActiveRelationships   *int           `json:"active_relationships,omitempty"`
	Assets                *int           `json:"assets,omitempty"`
	ActiveProducts        *int           `json:"active_products,omitempty"`
	RelationshipsByStatus map[string]int `json:"relationships_by_status,omitempty"`
}

// Dashboard returns the caller's aggregates. Retailer-side users see the
// public brand count and their relationship totals; brand owners see
// their asset and product counts plus incoming relationships by status.
func (svc *AnalyticsService) Dashboard(ctx context.Context, userID uuid.UUID, role roles.Role) (*Dashboard, error) {
	if role.IsBrand() {
		return svc.brandDashboard(ctx, userID, role)
	}
	return svc.retailerDashboard(ctx, userID, role)
}

func (svc *AnalyticsService) retailerDashboard(ctx context.Context, userID uuid.UUID, role roles.Role) (*Dashboard, error) {
	brands, err := svc.reader.CountPublicBrands(ctx)
	if err != nil {
		return nil, err
	}

	total, active, err := svc.reader.CountRelationshipsByRetailer(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Role:                role.String(),
		TotalBrands:         &brands,
		TotalRelationships:  &total,
		ActiveRelationships: &active,
	}, nil
}

func (svc *AnalyticsService) brandDashboard(ctx context.Context, userID uuid.UUID, role roles.Role) (*Dashboard, error) {
	brand, err := svc.brands.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}

	assets, err := svc.reader.CountAssetsByBrand(ctx, brand.BrandID)
	if err != nil {
		return nil, err
	}

	products, err := svc.reader.CountActiveProductsByBrand(ctx, brand.BrandID)
	if err != nil {
		return nil, err
	}

	byStatus, err := svc.reader.CountRelationshipsByBrandStatus(ctx, brand.BrandID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	return &Dashboard{
		Role:                  role.String(),
		TotalRelationships:    &total,
		Assets:                &assets,
		ActiveProducts:        &products,
		RelationshipsByStatus: byStatus,
	}, nil
}
