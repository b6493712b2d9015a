package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
	"github.com/rollodex/brandcentral/internal/services"
)

func TestRelationshipCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	brandID := uuid.New()

	tests := []struct {
		name       string
		body       map[string]any
		mockSetup  func(m *MockRelationshipCreator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created with defaults",
			body: map[string]any{"brand_id": brandID.String()},
			mockSetup: func(m *MockRelationshipCreator) {
				m.EXPECT().
					Create(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ any, _ uuid.UUID, p services.RelationshipCreateParams) (*models.RelationshipDB, error) {
						assert.Equal(t, brandID, p.BrandID)
						assert.Empty(t, p.Status)
						return &models.RelationshipDB{
							RelationshipID: uuid.New(),
							Status:         models.StatusProspective,
							Priority:       models.PriorityNormal,
						}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate pair",
			body: map[string]any{"brand_id": brandID.String()},
			mockSetup: func(m *MockRelationshipCreator) {
				m.EXPECT().
					Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrDuplicateRelationship)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_RELATIONSHIP",
		},
		{
			name: "brand not public",
			body: map[string]any{"brand_id": brandID.String()},
			mockSetup: func(m *MockRelationshipCreator) {
				m.EXPECT().
					Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrBrandNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "missing brand id",
			body:       map[string]any{"status": "active"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "bad status",
			body:       map[string]any{"brand_id": brandID.String(), "status": "archived"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := NewMockRelationshipCreator(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockSvc)
			}

			var buf bytes.Buffer
			assert.NoError(t, json.NewEncoder(&buf).Encode(tc.body))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/relationships", &buf)
			req = authed(req, userID, roles.RetailerAdmin)
			rec := httptest.NewRecorder()

			NewRelationshipCreateHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantCode != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantCode, resp.Code)
			}
		})
	}
}
