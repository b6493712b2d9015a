package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
	"github.com/rollodex/brandcentral/internal/services"
	"github.com/rollodex/brandcentral/internal/storage"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxUploadMemory = 32 << 20

// AssetUploader defines the interface that the asset service must implement.
type AssetUploader interface {
	Upload(ctx context.Context, brandID, requesterID uuid.UUID, role roles.Role, files []*multipart.FileHeader, p services.UploadParams) ([]models.AssetDB, error)
}

// AssetUploadResponse lists the stored assets
// swagger:model AssetUploadResponse
type AssetUploadResponse struct {
	Assets []models.AssetDB `json:"assets"`
}

// NewAssetsUploadHandler returns an HTTP handler for uploading brand
// files. Up to ten files of at most 10MB each per request, shared
// metadata from the form fields.
// @Summary Upload brand assets
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param brandID path string true "Brand ID"
// @Param files formData file true "Files to upload"
// @Param description formData string false "Shared description"
// @Param category formData string false "Shared category"
// @Param permission_level formData string false "public, partners_only or private; defaults to public"
// @Success 201 {object} handlers.AssetUploadResponse "Stored assets"
// @Failure 400 {object} handlers.ErrorResponse "Invalid file type, oversized file or empty batch"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not allowed to upload for this brand"
// @Failure 404 {object} handlers.ErrorResponse "Brand not found"
// @Router /brands/{brandID}/assets [post]
func NewAssetsUploadHandler(svc AssetUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		brandID, ok := uuidParam(w, r, "brandID")
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, (storage.MaxFileSize+1<<20)*storage.MaxFilesPerRequest)
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			respondError(w, http.StatusBadRequest, "invalid multipart body", "VALIDATION_ERROR")
			return
		}
		defer r.MultipartForm.RemoveAll()

		role, err := roles.Parse(claims.Role)
		if err != nil {
			role = roles.Basic
		}

		assets, err := svc.Upload(r.Context(), brandID, claims.UserID, role, r.MultipartForm.File["files"], services.UploadParams{
			Description:     formOptional(r, "description"),
			Category:        formOptional(r, "category"),
			PermissionLevel: r.FormValue("permission_level"),
			IsFeatured:      r.FormValue("is_featured") == "true",
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, AssetUploadResponse{Assets: assets})
	}
}

func formOptional(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}
