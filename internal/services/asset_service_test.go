package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
	"github.com/rollodex/brandcentral/internal/storage"
)

func newAssetMocks(ctrl *gomock.Controller) (*AssetService, *MockAssetReader, *MockAssetWriter, *MockBrandGetter, *MockFileStore, *MockActivityWriter) {
	reader := NewMockAssetReader(ctrl)
	writer := NewMockAssetWriter(ctrl)
	brands := NewMockBrandGetter(ctrl)
	store := NewMockFileStore(ctrl)
	activity := NewMockActivityWriter(ctrl)

	svc := NewAssetService(reader, writer, brands, store, activity)
	return svc, reader, writer, brands, store, activity
}

func headers(names ...string) []*multipart.FileHeader {
	fhs := make([]*multipart.FileHeader, 0, len(names))
	for _, n := range names {
		fhs = append(fhs, &multipart.FileHeader{Filename: n, Size: 1024})
	}
	return fhs
}

func TestAssetService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, brands, store, activity := newAssetMocks(ctrl)

	owner := uuid.New()
	brandID := uuid.New()

	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, OwnerID: owner}, nil)

	store.EXPECT().Save(gomock.Any(), brandID, gomock.Any()).
		Return(&storage.SavedFile{
			Filename: "gen.png",
			RelPath:  "brands/" + brandID.String() + "/gen.png",
			MimeType: "image/png",
			Size:     1024,
		}, nil).Times(2)
	writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	assets, err := svc.Upload(context.Background(), brandID, owner, roles.BrandAdmin,
		headers("logo.png", "deck.pdf"), UploadParams{})

	assert.NoError(t, err)
	assert.Len(t, assets, 2)
	assert.Equal(t, models.PermissionPublic, assets[0].PermissionLevel)
	assert.Equal(t, "logo.png", assets[0].OriginalName)
	assert.Equal(t, "/uploads/brands/"+brandID.String()+"/gen.png", assets[0].URL)
}

func TestAssetService_Upload_Validation(t *testing.T) {
	owner := uuid.New()
	brandID := uuid.New()
	brand := &models.BrandDB{BrandID: brandID, OwnerID: owner}

	tests := []struct {
		name    string
		files   []*multipart.FileHeader
		params  UploadParams
		wantErr error
	}{
		{name: "no files", files: nil, wantErr: ErrNoFiles},
		{
			name: "too many files",
			files: headers("1.png", "2.png", "3.png", "4.png", "5.png",
				"6.png", "7.png", "8.png", "9.png", "10.png", "11.png"),
			wantErr: ErrTooManyFiles,
		},
		{name: "disallowed extension", files: headers("run.exe"), wantErr: storage.ErrInvalidFileType},
		{
			name:    "oversized file",
			files:   []*multipart.FileHeader{{Filename: "big.png", Size: storage.MaxFileSize + 1}},
			wantErr: storage.ErrFileTooLarge,
		},
		{
			name:    "invalid permission level",
			files:   headers("a.png"),
			params:  UploadParams{PermissionLevel: "secret"},
			wantErr: ErrInvalidPermissionLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _, brands, _, _ := newAssetMocks(ctrl)
			if tc.wantErr != ErrInvalidPermissionLevel {
				brands.EXPECT().GetByID(gomock.Any(), brandID).Return(brand, nil)
			}

			_, err := svc.Upload(context.Background(), brandID, owner, roles.BrandAdmin, tc.files, tc.params)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAssetService_Upload_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, brands, _, _ := newAssetMocks(ctrl)

	brandID := uuid.New()

	// Retailer-side roles never upload, admin or not.
	for _, role := range []roles.Role{roles.RetailerBuyer, roles.RetailerAdmin} {
		brands.EXPECT().GetByID(gomock.Any(), brandID).
			Return(&models.BrandDB{BrandID: brandID, OwnerID: uuid.New()}, nil)

		_, err := svc.Upload(context.Background(), brandID, uuid.New(), role,
			headers("logo.png"), UploadParams{})
		assert.ErrorIs(t, err, ErrForbidden)
	}
}

func TestAssetService_Upload_CleansUpOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, brands, store, _ := newAssetMocks(ctrl)

	owner := uuid.New()
	brandID := uuid.New()

	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, OwnerID: owner}, nil)

	first := store.EXPECT().Save(gomock.Any(), brandID, gomock.Any()).
		Return(&storage.SavedFile{Filename: "one.png", RelPath: "brands/x/one.png"}, nil)
	writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Save(gomock.Any(), brandID, gomock.Any()).
		After(first).
		Return(nil, errors.New("disk full"))

	// The stored first file is rolled back.
	store.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().Delete(gomock.Any(), gomock.Any(), brandID).Return(true, nil)

	_, err := svc.Upload(context.Background(), brandID, owner, roles.BrandAdmin,
		headers("one.png", "two.png"), UploadParams{})
	assert.Error(t, err)
}

func TestAssetService_List(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	brandID := uuid.New()

	tests := []struct {
		name      string
		brand     *models.BrandDB
		requester uuid.UUID
		ownerList bool
		wantErr   error
	}{
		{
			name:      "owner sees everything",
			brand:     &models.BrandDB{BrandID: brandID, OwnerID: owner, IsPublic: false},
			requester: owner,
			ownerList: true,
		},
		{
			name:      "stranger sees visible assets of public brand",
			brand:     &models.BrandDB{BrandID: brandID, OwnerID: owner, IsPublic: true},
			requester: stranger,
		},
		{
			name:      "private brand is forbidden",
			brand:     &models.BrandDB{BrandID: brandID, OwnerID: owner, IsPublic: false},
			requester: stranger,
			wantErr:   ErrForbidden,
		},
		{
			name:      "absent brand",
			brand:     nil,
			requester: stranger,
			wantErr:   ErrBrandNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, _, brands, _, _ := newAssetMocks(ctrl)
			brands.EXPECT().GetByID(gomock.Any(), brandID).Return(tc.brand, nil)

			if tc.wantErr == nil {
				if tc.ownerList {
					reader.EXPECT().ListByBrand(gomock.Any(), brandID).Return([]models.AssetDB{}, nil)
				} else {
					reader.EXPECT().ListVisibleByBrand(gomock.Any(), brandID).Return([]models.AssetDB{}, nil)
				}
			}

			_, err := svc.List(context.Background(), brandID, tc.requester)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAssetService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, brands, store, activity := newAssetMocks(ctrl)

	owner := uuid.New()
	brandID := uuid.New()
	assetID := uuid.New()

	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, OwnerID: owner}, nil)
	reader.EXPECT().GetByID(gomock.Any(), assetID, brandID).
		Return(&models.AssetDB{AssetID: assetID, BrandID: brandID, Filename: "gen.png"}, nil)
	writer.EXPECT().Delete(gomock.Any(), assetID, brandID).Return(true, nil)
	store.EXPECT().Remove(gomock.Any(), "brands/"+brandID.String()+"/gen.png").Return(nil)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), brandID, assetID, owner))
}

func TestAssetService_Delete_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, brands, _, _ := newAssetMocks(ctrl)

	brandID := uuid.New()
	brands.EXPECT().GetByID(gomock.Any(), brandID).
		Return(&models.BrandDB{BrandID: brandID, OwnerID: uuid.New()}, nil)

	err := svc.Delete(context.Background(), brandID, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}
