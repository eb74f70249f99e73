package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SHOPWINDOW_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SHOPWINDOW_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
}
