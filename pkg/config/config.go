// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, zones, and logging settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Zones contains timezone-related configuration
	Zones ZonesConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per second per client IP
	RateLimit int

	// RateBurst is the burst size of the per-IP rate limiter
	RateBurst int
}

// ZonesConfig holds zone resolution defaults
type ZonesConfig struct {
	// SourceZone is the default zone specifier for inputs without an
	// explicit ",zone" suffix (e.g. "Local", "UTC", "GMT-7", an IANA name)
	SourceZone string

	// DisplayZones is a comma-separated list of zone specifiers every
	// parsed instant is rendered in
	DisplayZones string

	// IncludeLocal prepends the process-local zone to the display list
	IncludeLocal bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("TIMECONV_PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("TIMECONV_RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("TIMECONV_RATE_BURST", 20),
		},
		Zones: ZonesConfig{
			SourceZone:   getEnvOrDefault("TIMECONV_SOURCE_ZONE", "Local"),
			DisplayZones: getEnvOrDefault("TIMECONV_DISPLAY_ZONES", "Local,UTC"),
			IncludeLocal: getEnvAsBoolOrDefault("TIMECONV_INCLUDE_LOCAL", true),
		},
		LogLevel: getEnvOrDefault("TIMECONV_LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request per second")
	}

	if c.Server.RateBurst < c.Server.RateLimit {
		return errors.New("rate burst must not be below the rate limit")
	}

	if c.Zones.SourceZone == "" {
		return errors.New("source zone cannot be empty")
	}

	return nil
}
