package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"wanderly-server/internal/config"
	"wanderly-server/internal/handlers"
	"wanderly-server/internal/middleware"
	"wanderly-server/internal/ratelimit"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	limiter *ratelimit.KeyedRateLimiter,
	authHandler *handlers.AuthHandler,
	googleAuthHandler *handlers.GoogleAuthHandler,
	forgotPasswordHandler *handlers.ForgotPasswordHandler,
	tripsHandler *handlers.TripsHandler,
	activitiesHandler *handlers.ActivitiesHandler,
	healthHandler *handlers.HealthHandler,
) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, &cfg.JWT)
	}
	limited := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RateLimit(next, limiter)
	}

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes; credential endpoints are rate limited per IP
	http.HandleFunc("/api/auth/signup", limited(authHandler.Signup))
	http.HandleFunc("/api/auth/login", limited(authHandler.Login))
	http.HandleFunc("/api/auth/me", auth(authHandler.Me))
	http.HandleFunc("/api/auth/google/login", googleAuthHandler.GoogleLogin)
	http.HandleFunc("/api/auth/google/callback", googleAuthHandler.GoogleCallback)
	http.HandleFunc("/api/auth/forgot-password", limited(forgotPasswordHandler.ForgotPassword))
	http.HandleFunc("/api/auth/verify-otp", limited(forgotPasswordHandler.VerifyOTP))
	http.HandleFunc("/api/auth/reset-password", limited(forgotPasswordHandler.ResetPassword))

	// Trip routes; the subtree handler dispatches /api/trips/{id}...
	http.HandleFunc("/api/trips", auth(tripsHandler.Trips))
	http.HandleFunc("/api/trips/", auth(tripsHandler.TripSubtree))

	// Activity routes addressed by activity id
	http.HandleFunc("/api/activities/", auth(activitiesHandler.ActivityByID))

	// API documentation
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Wanderly backend is running."))
}
