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
	"github.com/rollodex/brandcentral/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validBody := map[string]any{
		"email":        "owner@acme.com",
		"password":     "secret123",
		"first_name":   "Jane",
		"last_name":    "Doe",
		"company_name": "Acme Goods",
		"company_type": "brand",
	}

	tests := []struct {
		name       string
		body       any
		mockSetup  func(m *MockRegisterer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: validBody,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return("tok", &models.UserDB{UserID: uuid.New(), Email: "owner@acme.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "email exists",
			body: validBody,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return("", nil, services.ErrEmailExists)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_EXISTS",
		},
		{
			name: "short password",
			body: map[string]any{
				"email":        "owner@acme.com",
				"password":     "short",
				"first_name":   "Jane",
				"last_name":    "Doe",
				"company_name": "Acme Goods",
				"company_type": "brand",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "bad company type",
			body: map[string]any{
				"email":        "owner@acme.com",
				"password":     "secret123",
				"first_name":   "Jane",
				"last_name":    "Doe",
				"company_name": "Acme Goods",
				"company_type": "wholesaler",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockSvc)
			}

			var buf bytes.Buffer
			if s, ok := tc.body.(string); ok {
				buf.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&buf).Encode(tc.body))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", &buf)
			rec := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantCode != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantCode, resp.Code)
			} else {
				var resp AuthResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "tok", resp.Token)
			}
		})
	}
}
