package config

import (
	"fmt"
	"os"
	"time"
)

// Config carries everything read from the environment at startup.
type Config struct {
	Port    string
	GinMode string

	// DBDriver selects "sqlite" (default) or "postgres".
	DBDriver    string
	SQLitePath  string
	PostgresDSN string

	JWTSecret string
	TokenTTL  time.Duration

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load reads the configuration from environment variables. JWT_SECRET is
// the only hard requirement; everything else has a development default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		GinMode:       getEnvOrDefault("GIN_MODE", "debug"),
		DBDriver:      getEnvOrDefault("DB_DRIVER", "sqlite"),
		SQLitePath:    getEnvOrDefault("SQLITE_PATH", "realty.db"),
		PostgresDSN:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminName:     getEnvOrDefault("ADMIN_NAME", "Administrator"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DBDriver == "postgres" && cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
	}

	ttl := getEnvOrDefault("TOKEN_TTL", "24h")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
	}
	cfg.TokenTTL = d

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
