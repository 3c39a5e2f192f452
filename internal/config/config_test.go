package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/billing-engine/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":              "",
		"PORT":                 "",
		"CORS_ALLOWED_ORIGINS": "",
		"REDIS_URL":            "",
		"BASE_CURRENCY_ID":     "",
		"CURRENCY_CACHE_TTL":   "",
		"RATE_LIMIT_WINDOW":    "",
		"RATE_LIMIT_MAX":       "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Empty(t, cfg.CORSAllowedOrigins)
	require.Equal(t, "1", cfg.BaseCurrencyID)
	require.Equal(t, 10*time.Minute, cfg.CurrencyCacheTTL)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.Equal(t, 120, cfg.RateLimitMax)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":              "production",
		"PORT":                 "9090",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
		"BASE_CURRENCY_ID":     "3",
		"CURRENCY_CACHE_TTL":   "30s",
		"RATE_LIMIT_WINDOW":    "5s",
		"RATE_LIMIT_MAX":       "10",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "3", cfg.BaseCurrencyID)
	require.Equal(t, 30*time.Second, cfg.CurrencyCacheTTL)
	require.Equal(t, 5*time.Second, cfg.RateLimitWindow)
	require.Equal(t, 10, cfg.RateLimitMax)
}

func TestLoadMalformedDurationFallsBack(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CURRENCY_CACHE_TTL": "not-a-duration",
		"RATE_LIMIT_MAX":     "many",
	})
	require.NoError(t, err)
	require.Equal(t, 10*time.Minute, cfg.CurrencyCacheTTL)
	require.Equal(t, 120, cfg.RateLimitMax)
}
