package environment

import (
	"os"
	"strings"
)

// GetGooglePlacesKey returns the Places API key, trimmed. Empty means the
// service runs in degraded mode and never calls the provider.
func GetGooglePlacesKey() string {
	return strings.TrimSpace(os.Getenv("GOOGLE_PLACES_API_KEY"))
}

// GetPort returns the HTTP listen port.
func GetPort() string {
	return getEnvOrDefault("PORT", "8080")
}

// GetLogLevel returns the zerolog level name (debug, info, warn, error).
func GetLogLevel() string {
	return getEnvOrDefault("LOG_LEVEL", "info")
}

// GetLogFormat returns "json" or "console".
func GetLogFormat() string {
	return getEnvOrDefault("LOG_FORMAT", "json")
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
