package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// fallbackAPIKey keeps the dashboard usable out of the box; CWA open
	// data keys are free and rate limits are generous.
	fallbackAPIKey = "CWA-FE3705DB-3102-48DE-B396-30F5D45306C2"

	defaultLocation = "臺北市"
)

// Config holds runtime configuration for the terminal
type Config struct {
	APIKey          string
	DefaultLocation string
	DBPath          string
	SampleDir       string
	StrictSSL       bool
}

// Load reads configuration from environment variables (optionally .env)
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.APIKey = strings.TrimSpace(os.Getenv("CWA_API_KEY"))
	if cfg.APIKey == "" {
		cfg.APIKey = fallbackAPIKey
	}

	cfg.DefaultLocation = strings.TrimSpace(os.Getenv("CWA_DEFAULT_LOCATION"))
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = defaultLocation
	}

	cfg.DBPath = strings.TrimSpace(os.Getenv("CWA_DB_PATH"))
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "cwa-terminal.db")
	}

	cfg.SampleDir = strings.TrimSpace(os.Getenv("CWA_SAMPLE_DIR"))
	if cfg.SampleDir == "" {
		cfg.SampleDir = "sample"
	}

	strict := strings.TrimSpace(os.Getenv("CWA_STRICT_SSL"))
	cfg.StrictSSL = strings.EqualFold(strict, "true") || strict == "1"

	return cfg
}
