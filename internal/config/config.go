package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generator CLI
type Config struct {
	// Seed seeds the random source; 0 means seed from the current time
	Seed int64
	// Count is the number of characters to generate per run
	Count int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Seed:  getEnvAsInt64OrDefault("SHEETGEN_SEED", 0),
		Count: getEnvAsIntOrDefault("SHEETGEN_COUNT", 1),
	}, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
