package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/jwt"
	"github.com/rollodex/brandcentral/internal/middlewares"
	"github.com/rollodex/brandcentral/internal/roles"
)

// authed attaches claims for the given user and role, the way the auth
// middleware would on a live request.
func authed(r *http.Request, userID uuid.UUID, role roles.Role) *http.Request {
	claims := &jwt.Claims{
		UserID:      userID,
		Email:       "user@acme.com",
		Role:        role.String(),
		CompanyType: "retailer",
	}
	return r.WithContext(middlewares.ContextWithClaims(r.Context(), claims))
}

// withURLParam injects a chi route parameter without running a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestClaimsOrAbort_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/profile", nil)
	rec := httptest.NewRecorder()

	_, ok := claimsOrAbort(rec, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUUIDParam_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands/not-a-uuid", nil)
	req = withURLParam(req, "brandID", "not-a-uuid")
	rec := httptest.NewRecorder()

	_, ok := uuidParam(rec, req, "brandID")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
