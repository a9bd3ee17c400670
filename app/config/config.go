package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// DBPath is the BadgerDB data directory. Empty means in-memory.
	DBPath string

	// SessionCookie is the name of the session cookie.
	SessionCookie string

	// Feed page size.
	PerPage int

	// Logging settings.
	LogLevel  string
	LogFormat string // "json" or "console"
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DBPath:        getEnv("DB_PATH", "data/badger"),
		SessionCookie: getEnv("SESSION_COOKIE", "inkwell_session"),
		PerPage:       getIntEnv("PER_PAGE", 10),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
