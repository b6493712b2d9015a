package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/validation"
)

// Loginer defines the interface that the auth service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email address
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	Password string `json:"password" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Checks credentials and returns a token. Unknown email, wrong password and deactivated accounts all answer the same way.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse "Authenticated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
	}
}
