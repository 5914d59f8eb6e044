package middleware

import (
	"log"
	"net/http"

	"wanderly-server/internal/utils"
)

// Recover is the final catch-all: it converts any panic escaping a
// handler into a generic 500 envelope and logs the detail server-side.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic recovered: %s %s: %v", r.Method, r.URL.Path, rec)
				utils.WriteErrorResponse(w, http.StatusInternalServerError, "Server error", "An unexpected error occurred")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
