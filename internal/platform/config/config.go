package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	JWTSecret        string
	LedgerWindowDays int    // Default itemized window for account statements
	RateLimit        string // ulule/limiter formatted rate, e.g. "120-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("LEDGER_WINDOW_DAYS", 30)
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.LedgerWindowDays = viper.GetInt("LEDGER_WINDOW_DAYS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
