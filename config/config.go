// Package config loads SDK options from environment, with optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds SDK options loaded from environment.
type Config struct {
	// LogLevel is the zap level for the facade logger (debug|info|warn|error).
	LogLevel string
	// VoterPageSize caps voter pagination requests; the server maximum is 100.
	VoterPageSize int
	// UserAgent is handed to the embedding application's transport; this
	// layer does not send it itself.
	UserAgent string
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	pageSize := getEnvInt("GUILDSDK_VOTER_PAGE_SIZE", 100)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 100
	}

	cfg := &Config{
		LogLevel:      getEnv("GUILDSDK_LOG_LEVEL", "info"),
		VoterPageSize: pageSize,
		UserAgent:     getEnv("GUILDSDK_USER_AGENT", "guildsdk (https://github.com/aura-chat/guildsdk)"),
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
