package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 6, cfg.Shortener.KeyLength)
	assert.Equal(t, 10, cfg.Shortener.MaxAttempts)
	assert.Equal(t, 100, cfg.Analytics.HistoryLimit)
	assert.Equal(t, 10*time.Second, cfg.Analytics.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.Analytics.RecentWindow)
	assert.Equal(t, 50, cfg.RateLimit.MaxPerHour)
	assert.Equal(t, 10, cfg.RateLimit.MaxBulkPerDay)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.BulkCooldown)
	assert.Equal(t, 1.5, cfg.RateLimit.ProgressiveFactor)
	assert.Equal(t, 5.0, cfg.RateLimit.ProgressiveCap)
	assert.Equal(t, 1000, cfg.Admin.OperationLogLimit)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8081
  mode: release
analytics:
  history_limit: 50
  cache_ttl: 5s
ratelimit:
  max_per_hour: 3
  bulk_cooldown: 30s
admin:
  token: super-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 50, cfg.Analytics.HistoryLimit)
	assert.Equal(t, 5*time.Second, cfg.Analytics.CacheTTL)
	assert.Equal(t, 3, cfg.RateLimit.MaxPerHour)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.BulkCooldown)
	assert.Equal(t, "super-secret", cfg.Admin.Token)
}

func TestLoad_TokenEnvExpansion(t *testing.T) {
	t.Setenv("SHORTWAVE_ADMIN_TOKEN", "from-env")
	path := writeConfig(t, "admin:\n  token: ${SHORTWAVE_ADMIN_TOKEN}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Admin.Token)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
