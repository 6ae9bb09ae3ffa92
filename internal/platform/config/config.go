package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	DBDriver           string
	DatabaseURL        string
	LogLevel           slog.Level
	AllowNegativeStock bool     // Lets sales take stock below zero instead of failing
	EnableReset        bool     // Exposes POST /api/admin/reset
	RateLimit          string   // ulule formatted rate, e.g. "100-S"
	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "file:shopledger.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOW_NEGATIVE_STOCK", false)
	v.SetDefault("RATE_LIMIT", "100-S")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("METRICS_ENABLED", true)
	v.AutomaticEnv()

	cfg := &Config{}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	// Reset is a development convenience; production has to opt in.
	v.SetDefault("ENABLE_RESET", !cfg.IsProduction)

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	case "postgres", "postgresql":
		cfg.DBDriver = DriverPostgres
	case "sqlite":
		cfg.DBDriver = DriverSQLite
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverSQLite, DriverPostgres)
	}

	cfg.DatabaseURL = v.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must not be empty")
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel.String())
	}

	cfg.AllowNegativeStock = v.GetBool("ALLOW_NEGATIVE_STOCK")
	cfg.EnableReset = v.GetBool("ENABLE_RESET")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.MetricsEnabled = v.GetBool("METRICS_ENABLED")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
