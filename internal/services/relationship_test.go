package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
)

func newRelationshipMocks(ctrl *gomock.Controller) (*RelationshipService, *MockRelationshipReader, *MockRelationshipWriter, *MockBrandGetter, *MockActivityWriter) {
	reader := NewMockRelationshipReader(ctrl)
	writer := NewMockRelationshipWriter(ctrl)
	brands := NewMockBrandGetter(ctrl)
	activity := NewMockActivityWriter(ctrl)

	svc := NewRelationshipService(reader, writer, brands, activity)
	return svc, reader, writer, brands, activity
}

func TestRelationshipService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, brands, activity := newRelationshipMocks(ctrl)

	brandID := uuid.New()
	retailerID := uuid.New()

	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, IsPublic: true}, nil)
	reader.EXPECT().GetByPair(gomock.Any(), brandID, retailerID).Return(nil, nil)
	writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	rel, err := svc.Create(context.Background(), retailerID, RelationshipCreateParams{BrandID: brandID})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusProspective, rel.Status)
	assert.Equal(t, models.PriorityNormal, rel.Priority)
	assert.Equal(t, retailerID, rel.CreatedBy)
}

func TestRelationshipService_Create_PrivateBrandHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, brands, _ := newRelationshipMocks(ctrl)

	brandID := uuid.New()
	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, IsPublic: false}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), RelationshipCreateParams{BrandID: brandID})
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestRelationshipService_Create_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, brands, _ := newRelationshipMocks(ctrl)

	brandID := uuid.New()
	retailerID := uuid.New()

	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, IsPublic: true}, nil)
	reader.EXPECT().GetByPair(gomock.Any(), brandID, retailerID).
		Return(&models.RelationshipDB{RelationshipID: uuid.New()}, nil)

	_, err := svc.Create(context.Background(), retailerID, RelationshipCreateParams{BrandID: brandID})
	assert.ErrorIs(t, err, ErrDuplicateRelationship)
}

func TestRelationshipService_Create_ConcurrentDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, brands, _ := newRelationshipMocks(ctrl)

	brandID := uuid.New()
	retailerID := uuid.New()

	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, IsPublic: true}, nil)
	reader.EXPECT().GetByPair(gomock.Any(), brandID, retailerID).Return(nil, nil)
	// A concurrent insert won the race; the unique constraint fires.
	writer.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505"})

	_, err := svc.Create(context.Background(), retailerID, RelationshipCreateParams{BrandID: brandID})
	assert.ErrorIs(t, err, ErrDuplicateRelationship)
}

func TestRelationshipService_Create_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newRelationshipMocks(ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), RelationshipCreateParams{BrandID: uuid.New(), Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Create(ctx, uuid.New(), RelationshipCreateParams{BrandID: uuid.New(), Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestRelationshipService_ListForRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _ := newRelationshipMocks(ctrl)
	userID := uuid.New()

	reader.EXPECT().ListForBrandOwner(gomock.Any(), userID).
		Return([]models.BrandRelationshipView{{RetailerCompany: "Corner Shop"}}, nil)

	retailerSide, brandSide, err := svc.ListForRole(context.Background(), userID, roles.BrandAdmin)
	assert.NoError(t, err)
	assert.Nil(t, retailerSide)
	assert.Len(t, brandSide, 1)

	reader.EXPECT().ListForRetailer(gomock.Any(), userID).
		Return([]models.RetailerRelationshipView{{BrandName: "Acme"}}, nil)

	retailerSide, brandSide, err = svc.ListForRole(context.Background(), userID, roles.RetailerBuyer)
	assert.NoError(t, err)
	assert.Len(t, retailerSide, 1)
	assert.Nil(t, brandSide)
}

func TestRelationshipService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _, activity := newRelationshipMocks(ctrl)

	relationshipID := uuid.New()
	retailerID := uuid.New()
	status := models.StatusActive

	writer.EXPECT().Update(gomock.Any(), relationshipID, retailerID, gomock.Any()).
		Return(&models.RelationshipDB{RelationshipID: relationshipID, Status: status}, nil)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	rel, err := svc.Update(context.Background(), relationshipID, retailerID, models.RelationshipUpdate{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusActive, rel.Status)
}

func TestRelationshipService_Update_ForeignIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _, _ := newRelationshipMocks(ctrl)

	writer.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), models.RelationshipUpdate{})
	assert.ErrorIs(t, err, ErrRelationshipNotFound)
}

func TestRelationshipService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _, activity := newRelationshipMocks(ctrl)

	relationshipID := uuid.New()
	retailerID := uuid.New()

	writer.EXPECT().Delete(gomock.Any(), relationshipID, retailerID).Return(true, nil)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), relationshipID, retailerID))

	writer.EXPECT().Delete(gomock.Any(), relationshipID, retailerID).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), relationshipID, retailerID), ErrRelationshipNotFound)
}
