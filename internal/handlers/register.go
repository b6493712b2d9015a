package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
	"github.com/rollodex/brandcentral/internal/services"
	"github.com/rollodex/brandcentral/internal/validation"
)

// Registerer defines the interface that the auth service must implement.
type Registerer interface {
	Register(ctx context.Context, p services.RegisterParams) (string, *models.UserDB, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email address, stored lowercased
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Password, at least 8 characters
	// required: true
	Password string `json:"password" validate:"required,min=8,max=72"`

	// First name
	// required: true
	FirstName string `json:"first_name" validate:"required,max=100"`

	// Last name
	// required: true
	LastName string `json:"last_name" validate:"required,max=100"`

	// Company name
	// required: true
	CompanyName string `json:"company_name" validate:"required,max=200"`

	// Company type, retailer or brand
	// required: true
	CompanyType string `json:"company_type" validate:"required,oneof=retailer brand"`

	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Title *string `json:"title,omitempty" validate:"omitempty,max=100"`
}

// AuthResponse carries a token and the user it belongs to
// swagger:model AuthResponse
type AuthResponse struct {
	Token string         `json:"token"`
	User  *models.UserDB `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates a user with a companion brand or retailer profile and returns a token. Email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} handlers.AuthResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
			return
		}
		if err := validation.Struct(req); err != nil {
			respondValidationError(w, err)
			return
		}

		companyType, err := roles.ParseCompanyType(req.CompanyType)
		if err != nil {
			respondValidationError(w, err)
			return
		}

		token, user, err := svc.Register(r.Context(), services.RegisterParams{
			Email:       req.Email,
			Password:    req.Password,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CompanyName: req.CompanyName,
			CompanyType: companyType,
			Phone:       req.Phone,
			Title:       req.Title,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
	}
}
