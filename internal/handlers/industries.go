package handlers

import (
	"context"
	"net/http"
)

// IndustryLister defines the interface that the brand service must implement.
type IndustryLister interface {
	Industries(ctx context.Context) ([]string, error)
}

// IndustriesResponse lists the distinct industries across public brands
// swagger:model IndustriesResponse
type IndustriesResponse struct {
	Industries []string `json:"industries"`
}

// NewIndustriesHandler returns an HTTP handler for the industry filter
// options.
// @Summary List industries
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.IndustriesResponse "Distinct industries"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /industries [get]
func NewIndustriesHandler(svc IndustryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		industries, err := svc.Industries(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if industries == nil {
			industries = []string{}
		}

		respondJSON(w, http.StatusOK, IndustriesResponse{Industries: industries})
	}
}
