package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "semestra.db", filepath.Base(cfg.DBPath))
	assert.Contains(t, cfg.DBPath, ".semestra")
	assert.Equal(t, "127.0.0.1:8475", cfg.HTTPAddr)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SEMESTRA_DB", "/tmp/test.db")
	t.Setenv("SEMESTRA_HTTP_ADDR", ":9000")
	t.Setenv("SEMESTRA_JWT_SECRET", "s3cr3t")
	t.Setenv("SEMESTRA_TOKEN_TTL_HOURS", "24")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEMESTRA_TOKEN_TTL_HOURS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
}

func TestLoad_NegativeTTL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEMESTRA_TOKEN_TTL_HOURS", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestRequireJWTSecret(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireJWTSecret())

	cfg.JWTSecret = "x"
	assert.NoError(t, cfg.RequireJWTSecret())
}
