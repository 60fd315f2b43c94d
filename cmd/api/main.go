// ABOUTME: Main entry point for the time-convert API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrdear/time-convert/api"
	"github.com/mrdear/time-convert/api/handlers"
	"github.com/mrdear/time-convert/core/interfaces"
	"github.com/mrdear/time-convert/core/parse"
	"github.com/mrdear/time-convert/core/timezone"
	"github.com/mrdear/time-convert/infrastructure/clock"
	"github.com/mrdear/time-convert/infrastructure/freetext"
	logrusadapter "github.com/mrdear/time-convert/infrastructure/logger/logrus"
	"github.com/mrdear/time-convert/infrastructure/tzdb"
	"github.com/mrdear/time-convert/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logrusadapter.NewLogrusLogger(cfg.LogLevel)
	logger.Info("Starting time-convert API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"source_zone":   cfg.Zones.SourceZone,
		"display_zones": cfg.Zones.DisplayZones,
	})

	// Create infrastructure
	database := tzdb.NewIANADatabase()

	// Create dependencies container
	deps := interfaces.Dependencies{
		TimeZones: database,
		FreeText:  freetext.NewDateparseParser(database),
		Clock:     clock.NewSystemClock(),
		Logger:    logger,
	}

	// Create services
	zoneService := timezone.NewZoneService(deps)
	parseService := parse.NewParseService(deps, zoneService)

	// Resolve the configured default source zone
	defaultZone, err := zoneService.ResolveZone(cfg.Zones.SourceZone)
	if err != nil {
		log.Fatalf("Invalid source zone %q: %v", cfg.Zones.SourceZone, err)
	}

	// Resolve the configured display zones
	displayZones := zoneService.ParseZoneList(cfg.Zones.DisplayZones, cfg.Zones.IncludeLocal)

	// Create router with middleware
	router := api.NewRouter(api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	// Create and register handlers
	convertHandler := handlers.NewConvertHandler(parseService, zoneService, defaultZone, displayZones, logger)
	convertHandler.RegisterRoutes(router)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
