package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/jwt"
	"github.com/rollodex/brandcentral/internal/middlewares"
)

// claimsOrAbort pulls the authenticated claims from the request context.
// The auth middleware guarantees them on protected routes; missing claims
// mean a wiring mistake, answered with 401.
func claimsOrAbort(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := middlewares.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
		return nil, false
	}
	return claims, true
}

// uuidParam parses a chi URL parameter as a UUID, answering 400 on
// malformed input.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid "+name, "VALIDATION_ERROR")
		return uuid.Nil, false
	}
	return id, true
}
