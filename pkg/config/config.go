package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// JWTSecret enables bearer-token auth on /api/v1 when non-empty.
	JWTSecret string

	// Parser defaults; individual requests may override the flags.
	DefaultCurrency   string
	AssumeFromSymbol  bool
	InfinitePrecision bool

	// ParseRateLimit is a ulule/limiter formatted rate, e.g. "60-M".
	ParseRateLimit string

	// CORSAllowedOrigins is the list of origins allowed by the CORS
	// middleware; "*" allows any.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file if
// present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("ASSUME_FROM_SYMBOL", true)
	viper.SetDefault("INFINITE_PRECISION", false)
	viper.SetDefault("PARSE_RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. API endpoints will be unauthenticated.")
	}

	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.AssumeFromSymbol = viper.GetBool("ASSUME_FROM_SYMBOL")
	cfg.InfinitePrecision = viper.GetBool("INFINITE_PRECISION")

	cfg.ParseRateLimit = viper.GetString("PARSE_RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.ParseRateLimit); err != nil {
		return nil, fmt.Errorf("invalid PARSE_RATE_LIMIT %q: %w", cfg.ParseRateLimit, err)
	}

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
