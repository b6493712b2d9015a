package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
)

func TestAnalyticsService_Dashboard_Retailer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAnalyticsReader(ctrl)
	brands := NewMockBrandOwnerGetter(ctrl)
	svc := NewAnalyticsService(reader, brands)

	userID := uuid.New()
	reader.EXPECT().CountPublicBrands(gomock.Any()).Return(42, nil)
	reader.EXPECT().CountRelationshipsByRetailer(gomock.Any(), userID).Return(7, 3, nil)

	d, err := svc.Dashboard(context.Background(), userID, roles.RetailerAdmin)

	assert.NoError(t, err)
	assert.Equal(t, roles.RetailerAdmin.String(), d.Role)
	assert.Equal(t, 42, *d.TotalBrands)
	assert.Equal(t, 7, *d.TotalRelationships)
	assert.Equal(t, 3, *d.ActiveRelationships)
	assert.Nil(t, d.Assets)
	assert.Nil(t, d.RelationshipsByStatus)
}

func TestAnalyticsService_Dashboard_BrandOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAnalyticsReader(ctrl)
	brands := NewMockBrandOwnerGetter(ctrl)
	svc := NewAnalyticsService(reader, brands)

	userID := uuid.New()
	brandID := uuid.New()

	brands.EXPECT().GetByOwnerID(gomock.Any(), userID).
		Return(&models.BrandDB{BrandID: brandID, OwnerID: userID}, nil)
	reader.EXPECT().CountAssetsByBrand(gomock.Any(), brandID).Return(5, nil)
	reader.EXPECT().CountActiveProductsByBrand(gomock.Any(), brandID).Return(12, nil)
	reader.EXPECT().CountRelationshipsByBrandStatus(gomock.Any(), brandID).
		Return(map[string]int{"active": 4, "pending": 2}, nil)

	d, err := svc.Dashboard(context.Background(), userID, roles.BrandAdmin)

	assert.NoError(t, err)
	assert.Equal(t, 5, *d.Assets)
	assert.Equal(t, 12, *d.ActiveProducts)
	assert.Equal(t, 6, *d.TotalRelationships)
	assert.Equal(t, map[string]int{"active": 4, "pending": 2}, d.RelationshipsByStatus)
	assert.Nil(t, d.TotalBrands)
}

func TestAnalyticsService_Dashboard_BrandOwnerWithoutBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAnalyticsReader(ctrl)
	brands := NewMockBrandOwnerGetter(ctrl)
	svc := NewAnalyticsService(reader, brands)

	brands.EXPECT().GetByOwnerID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Dashboard(context.Background(), uuid.New(), roles.BrandAdmin)
	assert.ErrorIs(t, err, ErrBrandNotFound)
}
