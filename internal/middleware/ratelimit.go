package middleware

import (
	"net/http"

	"wanderly-server/internal/ratelimit"
	"wanderly-server/internal/utils"
)

// RateLimit throttles a handler per client IP using the shared keyed
// limiter. Applied to the unauthenticated auth endpoints.
func RateLimit(next http.HandlerFunc, limiter *ratelimit.KeyedRateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(utils.ClientIP(r)) {
			utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Too many requests", "Please slow down and try again shortly")
			return
		}
		next.ServeHTTP(w, r)
	}
}
