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

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       map[string]any
		mockSetup  func(m *MockLoginer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "authenticated",
			body: map[string]any{"email": "user@acme.com", "password": "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "user@acme.com", "secret123").
					Return("tok", &models.UserDB{UserID: uuid.New()}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: map[string]any{"email": "user@acme.com", "password": "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "user@acme.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "missing password",
			body:       map[string]any{"email": "user@acme.com"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockSvc)
			}

			var buf bytes.Buffer
			assert.NoError(t, json.NewEncoder(&buf).Encode(tc.body))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", &buf)
			rec := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantCode != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantCode, resp.Code)
			}
		})
	}
}
