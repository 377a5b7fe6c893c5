// Package config loads application configuration from a .env file and
// environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string
	// ExportDir is where CSV reports and certificates are written.
	ExportDir string
	// LogFile receives diagnostic logging; the terminal itself belongs
	// to the UI.
	LogFile string
}

// Load reads configuration from a .env file (if present) and
// environment variables, applying defaults when values are missing.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DBPath:    os.Getenv("CODEGENIO_DB"),
		ExportDir: envOr("CODEGENIO_EXPORT_DIR", "."),
		LogFile:   os.Getenv("CODEGENIO_LOG_FILE"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
