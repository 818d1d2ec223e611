package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Seed modes.
const (
	SeedSample = "sample"
	SeedEmpty  = "empty"
)

// Config holds application configuration
type Config struct {
	// Server
	Env        string
	Port       string
	CORSOrigin string
	LogLevel   string

	// Display
	Currency string

	// Initial state
	SeedMode string
	SeedFile string

	// Audit log
	AuditDSN string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		Env:        getEnv("ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		LogLevel:   getEnv("LOG_LEVEL", ""),

		Currency: strings.ToUpper(getEnv("CURRENCY", "SGD")),

		SeedMode: strings.ToLower(getEnv("SEED", SeedSample)),
		SeedFile: getEnv("SEED_FILE", ""),

		AuditDSN: getEnv("AUDIT_DSN", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("invalid CURRENCY %q: not an ISO 4217 code", c.Currency)
	}
	switch c.SeedMode {
	case SeedSample, SeedEmpty:
	default:
		return fmt.Errorf("invalid SEED %q: must be %s or %s", c.SeedMode, SeedSample, SeedEmpty)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
