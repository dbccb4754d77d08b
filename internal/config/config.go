package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config covers process level configuration read from environment variables.
type Config struct {
	DBPath   string
	HTTPAddr string

	// Server-mode settings; unused by local CLI commands.
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads SEMESTRA_* environment variables and applies defaults. The
// database path defaults to ~/.semestra/semestra.db.
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:    getEnv("SEMESTRA_DB", ""),
		HTTPAddr:  getEnv("SEMESTRA_HTTP_ADDR", "127.0.0.1:8475"),
		JWTSecret: getEnv("SEMESTRA_JWT_SECRET", ""),
		TokenTTL:  time.Duration(getEnvInt("SEMESTRA_TOKEN_TTL_HOURS", 72)) * time.Hour,
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".semestra", "semestra.db")
	}

	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("SEMESTRA_TOKEN_TTL_HOURS must be positive")
	}

	return cfg, nil
}

// RequireJWTSecret validates that a signing secret is present. Only the
// serve command needs one.
func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("SEMESTRA_JWT_SECRET must be provided to run the server")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
