package config_test

import (
	"coworking/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_SHUTDOWN_GRACE_PERIOD_SECONDS", "5")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "100")
	t.Setenv("CACHE_ENABLE", "false")
	t.Setenv("CACHE_TTL", "60")

	cfg := config.Get()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.EqualValues(t, 5, cfg.Server.Shutdown.GracePeriodSeconds)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORS.AllowedOrigins)
	assert.Equal(t, 100, cfg.App.RateLimiter.MaxRequests)
	assert.True(t, cfg.App.Seed, "demo data is seeded unless disabled")
	assert.False(t, cfg.Cache.Enable)
	assert.Equal(t, 60, cfg.Cache.TTL)

	assert.Same(t, cfg, config.Get())
}
