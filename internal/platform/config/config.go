package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// CORS
	CORSAllowedOrigins []string

	// Rate limiting for the export endpoints.
	ExportRateLimit       int64
	ExportRateLimitPeriod time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("EXPORT_RATE_LIMIT", int64(10))
	viper.SetDefault("EXPORT_RATE_LIMIT_PERIOD", "1m")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	cfg.ExportRateLimit = viper.GetInt64("EXPORT_RATE_LIMIT")
	cfg.ExportRateLimitPeriod = viper.GetDuration("EXPORT_RATE_LIMIT_PERIOD")

	return cfg, nil
}
