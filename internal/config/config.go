package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Port              int
	ExaAPIKey         string
	SerpAPIKey        string
	DefaultMaxResults int
	MaxResultsCap     int
	SearchTimeout     time.Duration
}

// Load loads configuration from environment variables. EXA_API_KEY is
// required; its absence is a configuration error reported before any
// network call is attempted.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnvInt("PORT", 5000),
		ExaAPIKey:         os.Getenv("EXA_API_KEY"),
		SerpAPIKey:        os.Getenv("SERPAPI_API_KEY"),
		DefaultMaxResults: getEnvInt("DEFAULT_MAX_RESULTS", 5),
		MaxResultsCap:     getEnvInt("MAX_RESULTS_CAP", 20),
		SearchTimeout:     getEnvDuration("SEARCH_TIMEOUT", 15*time.Second),
	}

	if cfg.ExaAPIKey == "" {
		return Config{}, fmt.Errorf("missing required environment variable: EXA_API_KEY")
	}
	if cfg.DefaultMaxResults < 1 || cfg.DefaultMaxResults > cfg.MaxResultsCap {
		return Config{}, fmt.Errorf("DEFAULT_MAX_RESULTS must be between 1 and %d, got %d", cfg.MaxResultsCap, cfg.DefaultMaxResults)
	}

	return cfg, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
