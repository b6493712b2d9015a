package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/services"
)

// BrandLister defines the interface that the brand service must implement.
type BrandLister interface {
	List(ctx context.Context, filter services.BrandFilter, page, limit int) ([]models.BrandDB, models.Pagination, error)
}

// BrandListResponse is a page of the brand directory
// swagger:model BrandListResponse
type BrandListResponse struct {
	Brands     []models.BrandDB  `json:"brands"`
	Pagination models.Pagination `json:"pagination"`
}

// NewBrandsListHandler returns an HTTP handler for the public brand
// directory.
// @Summary List public brands
// @Description Pages through public brands, most complete profiles first. Search matches name and description.
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on name or description"
// @Param industry query string false "Exact industry match"
// @Param page query int false "Page number, from 1"
// @Param limit query int false "Page size, 1 to 100"
// @Success 200 {object} handlers.BrandListResponse "Directory page"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /brands [get]
func NewBrandsListHandler(svc BrandLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		brands, pagination, err := svc.List(r.Context(), services.BrandFilter{
			Search:   q.Get("search"),
			Industry: q.Get("industry"),
		}, page, limit)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if brands == nil {
			brands = []models.BrandDB{}
		}

		respondJSON(w, http.StatusOK, BrandListResponse{Brands: brands, Pagination: pagination})
	}
}
