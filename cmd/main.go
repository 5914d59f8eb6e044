// @title Wanderly Backend API
// @version 1.0
// @description Wanderly Backend API for personal travel planning

// @contact.name API Support
// @contact.email support@wanderly.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "wanderly-server/docs" // swagger docs registration
	"wanderly-server/internal/config"
	"wanderly-server/internal/handlers"
	"wanderly-server/internal/middleware"
	"wanderly-server/internal/ratelimit"
	"wanderly-server/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// pgxpool with the simple protocol so the server also works behind
	// transaction-pooling proxies like PgBouncer
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "wanderly-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprintf("%d", cfg.Database.QueryTimeout.Milliseconds())
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}
	log.Printf("Connected to %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	// Per-IP rate limiter for the credential endpoints
	limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	defer limiter.Stop()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(pool, cfg)
	googleAuthHandler := handlers.NewGoogleAuthHandler(pool, cfg)
	forgotPasswordHandler := handlers.NewForgotPasswordHandler(pool, cfg)
	activitiesHandler := handlers.NewActivitiesHandler(pool, cfg)
	tripsHandler := handlers.NewTripsHandler(pool, cfg, activitiesHandler)
	healthHandler := handlers.NewHealthHandler(pool)

	routes.SetupRoutes(cfg, limiter, authHandler, googleAuthHandler,
		forgotPasswordHandler, tripsHandler, activitiesHandler, healthHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with panic recovery and CORS
	handler := c.Handler(middleware.Recover(http.DefaultServeMux))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
