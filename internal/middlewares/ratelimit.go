package middlewares

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rollodex/brandcentral/internal/logger"
)

// RateLimitMiddleware returns a per-IP fixed-window rate limiter backed by
// Redis. It is an availability safeguard, not a correctness mechanism: when
// Redis is unreachable the limiter fails open and the request proceeds.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "ratelimit:" + clientIP(r)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable, failing open", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					logger.Log.Warnw("failed to set rate limit window", "err", err)
				}
			}

			if count > int64(limit) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests",
					"code":  "RATE_LIMITED",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the caller address, preferring the X-Real-IP header set
// by the reverse proxy.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
