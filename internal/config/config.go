// Package config loads service configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/odaklab/adaptiq/internal/llm"
)

// Config is the full service configuration.
type Config struct {
	// ServerAddress is the HTTP listen address, e.g. ":8080".
	ServerAddress string

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration

	// Mode selects the logger profile: "dev" or "prod".
	Mode string

	// DBPath is the SQLite file for audit events. Empty selects the
	// default data directory; "off" disables persistence.
	DBPath string

	LLM llm.Config
}

// Load reads configuration from ADAPTIQ_* environment variables,
// loading a .env file first when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServerAddress:   getenvDefault("ADAPTIQ_ADDR", ":8080"),
		ShutdownTimeout: getDurationDefault("ADAPTIQ_SHUTDOWN_TIMEOUT", 10*time.Second),
		Mode:            getenvDefault("ADAPTIQ_MODE", "dev"),
		DBPath:          os.Getenv("ADAPTIQ_DB"),
		LLM:             llm.ConfigFromEnv(),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
