// Package config reads the TripMate server's configuration from environment
// variables. There are only four knobs, so plain os.Getenv with defaults
// beats a config-file framework here.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the TripMate server needs at startup.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string holding the trip
	// snapshot. Required; the server refuses to start without it.
	DatabaseURL string

	// LogLevel is the minimum slog level: debug, info, warn, or error.
	// Defaults to "info".
	LogLevel string

	// CORSOrigins lists the origins the web client may call the API from.
	// Defaults to the local Vite dev server; set CORS_ORIGINS to a
	// comma-separated list for deployed clients.
	CORSOrigins []string
}

// Load builds a Config from the environment.
// Returns an error naming any required variable that is not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv reads an optional variable, treating unset and empty alike so an
// `export PORT=` typo does not wipe a default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated origin list, trimming whitespace and
// dropping empty entries so trailing commas are harmless.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
