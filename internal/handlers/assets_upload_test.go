package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
	"github.com/rollodex/brandcentral/internal/services"
	"github.com/rollodex/brandcentral/internal/storage"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := w.CreateFormFile("files", name)
		assert.NoError(t, err)
		_, err = fw.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestAssetsUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	brandID := uuid.New()

	mockSvc := NewMockAssetUploader(ctrl)
	mockSvc.EXPECT().
		Upload(gomock.Any(), brandID, userID, roles.BrandAdmin, gomock.Len(1), gomock.Any()).
		DoAndReturn(func(_ any, _, _ uuid.UUID, _ roles.Role, files []*multipart.FileHeader, p services.UploadParams) ([]models.AssetDB, error) {
			assert.Equal(t, "logo.png", files[0].Filename)
			assert.Equal(t, "partners_only", p.PermissionLevel)
			assert.NotNil(t, p.Description)
			return []models.AssetDB{{AssetID: uuid.New(), OriginalName: "logo.png"}}, nil
		})

	body, contentType := multipartBody(t,
		map[string]string{"permission_level": "partners_only", "description": "Primary logo"},
		map[string][]byte{"logo.png": {0x89, 'P', 'N', 'G'}},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/brands/"+brandID.String()+"/assets", body)
	req.Header.Set("Content-Type", contentType)
	req = authed(req, userID, roles.BrandAdmin)
	req = withURLParam(req, "brandID", brandID.String())
	rec := httptest.NewRecorder()

	NewAssetsUploadHandler(mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "logo.png")
}

func TestAssetsUploadHandler_ServiceRejections(t *testing.T) {
	userID := uuid.New()
	brandID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "bad type", err: storage.ErrInvalidFileType, wantStatus: http.StatusBadRequest, wantCode: "INVALID_FILE_TYPE"},
		{name: "oversized", err: storage.ErrFileTooLarge, wantStatus: http.StatusBadRequest, wantCode: "FILE_TOO_LARGE"},
		{name: "forbidden", err: services.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockAssetUploader(ctrl)
			mockSvc.EXPECT().
				Upload(gomock.Any(), brandID, userID, gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			body, contentType := multipartBody(t, nil, map[string][]byte{"f.png": {1, 2, 3}})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/brands/"+brandID.String()+"/assets", body)
			req.Header.Set("Content-Type", contentType)
			req = authed(req, userID, roles.BrandAdmin)
			req = withURLParam(req, "brandID", brandID.String())
			rec := httptest.NewRecorder()

			NewAssetsUploadHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantCode)
		})
	}
}
