package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "STORE_DRIVER", "SECRET_KEY", "JWT_TTL", "CORS_ORIGINS", "RATE_RPS", "APP_MIGRATE", "REDIS_URL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 100, cfg.RateRPS)
	assert.True(t, cfg.Migrate)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_RPS", "0")
	t.Setenv("APP_MIGRATE", "false")

	cfg := Load()
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 0, cfg.RateRPS)
	assert.False(t, cfg.Migrate)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")
	t.Setenv("RATE_RPS", "many")

	cfg := Load()
	assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 100, cfg.RateRPS)
}
