package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "IS_PRODUCTION", "DB_DRIVER", "DATABASE_URL", "LOG_LEVEL",
		"ALLOW_NEGATIVE_STOCK", "ENABLE_RESET", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:shopledger.db", cfg.DatabaseURL)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.AllowNegativeStock)
	assert.True(t, cfg.EnableReset)
	assert.Equal(t, "100-S", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfig_ResetDisabledInProductionByDefault(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("ENABLE_RESET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.EnableReset)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ALLOW_NEGATIVE_STOCK", "true")
	t.Setenv("ENABLE_RESET", "false")
	t.Setenv("RATE_LIMIT", "10-M")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.AllowNegativeStock)
	assert.False(t, cfg.EnableReset)
	assert.Equal(t, "10-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadConfig_InvalidLogLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", ":memory:")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DATABASE_URL", ":memory:")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}
