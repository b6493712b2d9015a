package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger checks one dependency's liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RedisPinger checks the cache connection.
type RedisPinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse reports dependency status
// swagger:model HealthResponse
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// NewHealthHandler returns an HTTP handler for the liveness probe. A
// down database answers 503; a down cache only degrades rate limiting,
// so it is reported but stays 200.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Healthy or degraded"
// @Failure 503 {object} handlers.HealthResponse "Database unreachable"
// @Router /health [get]
func NewHealthHandler(db Pinger, cache RedisPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "ok", Database: "up", Cache: "up"}
		status := http.StatusOK

		if err := db.PingContext(ctx); err != nil {
			resp.Status = "unhealthy"
			resp.Database = "down"
			status = http.StatusServiceUnavailable
		}
		if err := cache.Ping(ctx); err != nil {
			resp.Cache = "down"
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}

		respondJSON(w, status, resp)
	}
}
