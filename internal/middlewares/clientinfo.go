package middlewares

import (
	"context"
	"net/http"
)

type clientInfoContextKey struct{}

var clientInfoKey = clientInfoContextKey{}

type clientInfo struct {
	ip        string
	userAgent string
}

// ClientInfoMiddleware stores the caller address and user agent in the
// request context for the activity log.
func ClientInfoMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), clientInfoKey, clientInfo{
				ip:        clientIP(r),
				userAgent: r.UserAgent(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientInfoFromContext returns the caller address and user agent, or
// empty strings outside an HTTP request.
func ClientInfoFromContext(ctx context.Context) (ip, userAgent string) {
	info, _ := ctx.Value(clientInfoKey).(clientInfo)
	return info.ip, info.userAgent
}
