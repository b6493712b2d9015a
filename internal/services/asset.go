package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
	"github.com/rollodex/brandcentral/internal/storage"
)

var (
	// ErrAssetNotFound is returned when the asset does not exist under
	// the brand.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrNoFiles is returned for an upload request without files.
	ErrNoFiles = errors.New("no files provided")

	// ErrTooManyFiles is returned when an upload exceeds the per-request
	// file cap.
	ErrTooManyFiles = errors.New("too many files in one request")

	// ErrInvalidPermissionLevel is returned for a permission level
	// outside the legal set.
	ErrInvalidPermissionLevel = errors.New("invalid permission level")
)

// AssetReader reads asset records.
type AssetReader interface {
	GetByID(ctx context.Context, assetID, brandID uuid.UUID) (*models.AssetDB, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.AssetDB, error)
	ListVisibleByBrand(ctx context.Context, brandID uuid.UUID) ([]models.AssetDB, error)
}

// AssetWriter persists asset records.
type AssetWriter interface {
	Create(ctx context.Context, asset *models.AssetDB) error
	Delete(ctx context.Context, assetID, brandID uuid.UUID) (bool, error)
}

// FileStore persists uploaded file content.
type FileStore interface {
	Save(ctx context.Context, brandID uuid.UUID, fh *multipart.FileHeader) (*storage.SavedFile, error)
	Remove(ctx context.Context, relPath string) error
}

// AssetService implements brand file management.
type AssetService struct {
	reader   AssetReader
	writer   AssetWriter
	brands   BrandGetter
	store    FileStore
	activity ActivityWriter
}

func NewAssetService(
	reader AssetReader,
	writer AssetWriter,
	brands BrandGetter,
	store FileStore,
	activity ActivityWriter,
) *AssetService {
	return &AssetService{
		reader:   reader,
		writer:   writer,
		brands:   brands,
		store:    store,
		activity: activity,
	}
}

// UploadParams carries the shared metadata for a batch of uploads. An
// empty PermissionLevel defaults to public.
type UploadParams struct {
	Description     *string
	Category        *string
	PermissionLevel string
	IsFeatured      bool
}

// Upload validates and persists a batch of files for a brand. The batch
// is all-or-nothing: validation runs before any file is written, and a
// mid-batch failure removes the files already stored.
func (svc *AssetService) Upload(ctx context.Context, brandID, requesterID uuid.UUID, role roles.Role, files []*multipart.FileHeader, p UploadParams) ([]models.AssetDB, error) {
	if p.PermissionLevel == "" {
		p.PermissionLevel = models.PermissionPublic
	}
	if !models.IsValidPermissionLevel(p.PermissionLevel) {
		return nil, ErrInvalidPermissionLevel
	}

	brand, err := svc.brands.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}
	if brand.OwnerID != requesterID && !role.IsBrand() {
		return nil, ErrForbidden
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > storage.MaxFilesPerRequest {
		return nil, ErrTooManyFiles
	}
	for _, fh := range files {
		if fh.Size > storage.MaxFileSize {
			return nil, storage.ErrFileTooLarge
		}
		if !storage.AllowedExtension(fh.Filename) {
			return nil, storage.ErrInvalidFileType
		}
	}

	assets := make([]models.AssetDB, 0, len(files))
	for _, fh := range files {
		saved, err := svc.store.Save(ctx, brandID, fh)
		if err != nil {
			svc.cleanup(ctx, brandID, assets)
			return nil, err
		}

		asset := models.AssetDB{
			AssetID:         uuid.New(),
			BrandID:         brandID,
			Filename:        saved.Filename,
			OriginalName:    fh.Filename,
			MimeType:        saved.MimeType,
			SizeBytes:       saved.Size,
			URL:             "/uploads/" + saved.RelPath,
			Description:     p.Description,
			Category:        p.Category,
			PermissionLevel: p.PermissionLevel,
			IsFeatured:      p.IsFeatured,
			UploadedBy:      requesterID,
		}
		if err := svc.writer.Create(ctx, &asset); err != nil {
			assets = append(assets, asset)
			svc.cleanup(ctx, brandID, assets)
			return nil, err
		}
		assets = append(assets, asset)
	}

	id := brandID
	recordActivity(ctx, svc.activity, requesterID, "assets_uploaded", "brand", &id, map[string]any{
		"count": len(assets),
	})

	return assets, nil
}

// List returns a brand's assets. The owner sees everything; other users
// see the public and partners-only assets of public brands.
func (svc *AssetService) List(ctx context.Context, brandID, requesterID uuid.UUID) ([]models.AssetDB, error) {
	brand, err := svc.brands.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}

	if brand.OwnerID == requesterID {
		return svc.reader.ListByBrand(ctx, brandID)
	}
	if !brand.IsPublic {
		return nil, ErrForbidden
	}
	return svc.reader.ListVisibleByBrand(ctx, brandID)
}

// Delete removes an asset's row and file. Only the brand owner may
// delete. A missing file on disk is not an error.
func (svc *AssetService) Delete(ctx context.Context, brandID, assetID, requesterID uuid.UUID) error {
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

	asset, err := svc.reader.GetByID(ctx, assetID, brandID)
	if err != nil {
		return err
	}
	if asset == nil {
		return ErrAssetNotFound
	}

	deleted, err := svc.writer.Delete(ctx, assetID, brandID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAssetNotFound
	}

	if err := svc.store.Remove(ctx, assetRelPath(brandID, asset.Filename)); err != nil {
		// The row is gone; an orphaned file is only noise on disk.
		logger.Log.Warnw("failed to remove asset file",
			"brand_id", brandID,
			"filename", asset.Filename,
			"err", err,
		)
	}

	id := assetID
	recordActivity(ctx, svc.activity, requesterID, "asset_deleted", "asset", &id, nil)

	return nil
}

func (svc *AssetService) cleanup(ctx context.Context, brandID uuid.UUID, assets []models.AssetDB) {
	for _, a := range assets {
		_ = svc.store.Remove(ctx, assetRelPath(brandID, a.Filename))
		_, _ = svc.writer.Delete(ctx, a.AssetID, brandID)
	}
}

func assetRelPath(brandID uuid.UUID, filename string) string {
	return "brands/" + brandID.String() + "/" + filename
}
