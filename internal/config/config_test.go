package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "REDIS_URL", "CURRENCY_CACHE_TTL", "ENVIRONMENT", "RUN_MIGRATIONS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5*time.Minute, cfg.CurrencyCacheTTL)
	assert.True(t, cfg.RunMigrations)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("CURRENCY_CACHE_TTL", "30s")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.CurrencyCacheTTL)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.RunMigrations)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CURRENCY_CACHE_TTL", "soon")
	t.Setenv("RUN_MIGRATIONS", "maybe")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.CurrencyCacheTTL)
	assert.True(t, cfg.RunMigrations)
}
