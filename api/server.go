// ABOUTME: API router configuration and middleware setup
// ABOUTME: Wires CORS, request logging and rate limiting around the handlers

package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mrdear/time-convert/api/middleware"
	"github.com/mrdear/time-convert/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger    interfaces.Logger
	RateLimit int // requests per second per client IP
	RateBurst int // burst size of the per-IP limiter
}

// NewRouter creates the chi router with middleware configured
func NewRouter(cfg APIConfig) chi.Router {
	router := chi.NewRouter()

	// CORS first so preflight requests short-circuit before rate limiting
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return router
}
