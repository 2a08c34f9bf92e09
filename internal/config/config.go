// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	Port   string
	DBPath string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:   getEnv("PORT", "3000"),
		DBPath: getEnv("BOOKINGS_DB_PATH", "./data/bookings.db"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("BOOKINGS_DB_PATH cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
