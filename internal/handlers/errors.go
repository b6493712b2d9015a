// Package handlers exposes the HTTP surface. Each endpoint lives in its
// own file and talks to a service through a narrow interface.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/services"
	"github.com/rollodex/brandcentral/internal/storage"
)

// ErrorResponse is the error envelope for every endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	Error string `json:"error"`

	// Stable machine-readable code
	Code string `json:"code"`
}

// errorStatus maps service sentinel errors onto HTTP status and stable
// codes. Unmapped errors become an opaque 500.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	services.ErrEmailExists:            {http.StatusConflict, "EMAIL_EXISTS"},
	services.ErrInvalidCredentials:     {http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	services.ErrUserNotFound:           {http.StatusNotFound, "NOT_FOUND"},
	services.ErrBrandNotFound:          {http.StatusNotFound, "NOT_FOUND"},
	services.ErrRelationshipNotFound:   {http.StatusNotFound, "NOT_FOUND"},
	services.ErrAssetNotFound:          {http.StatusNotFound, "NOT_FOUND"},
	services.ErrProductNotFound:        {http.StatusNotFound, "NOT_FOUND"},
	services.ErrForbidden:              {http.StatusForbidden, "FORBIDDEN"},
	services.ErrDuplicateRelationship:  {http.StatusConflict, "DUPLICATE_RELATIONSHIP"},
	services.ErrInvalidStatus:          {http.StatusBadRequest, "VALIDATION_ERROR"},
	services.ErrInvalidPriority:        {http.StatusBadRequest, "VALIDATION_ERROR"},
	services.ErrInvalidPermissionLevel: {http.StatusBadRequest, "VALIDATION_ERROR"},
	services.ErrNoFiles:                {http.StatusBadRequest, "NO_FILES"},
	services.ErrTooManyFiles:           {http.StatusBadRequest, "VALIDATION_ERROR"},
	storage.ErrInvalidFileType:         {http.StatusBadRequest, "INVALID_FILE_TYPE"},
	storage.ErrFileTooLarge:            {http.StatusBadRequest, "FILE_TOO_LARGE"},
}

// respondServiceError writes the mapped response for a service error.
func respondServiceError(w http.ResponseWriter, err error) {
	for sentinel, m := range errorStatus {
		if errors.Is(err, sentinel) {
			respondError(w, m.status, err.Error(), m.code)
			return
		}
	}

	logger.Log.Errorw("internal server error", "err", err)
	respondError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
}

func respondError(w http.ResponseWriter, status int, message, code string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func respondValidationError(w http.ResponseWriter, err error) {
	respondError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}
