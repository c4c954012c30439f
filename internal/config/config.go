package config

import (
	"os"
	"strconv"

	"skillboard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Upload   UploadConfig
	Debug    DebugConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds template upload limits
type UploadConfig struct {
	MaxBytes   int64
	SheetLimit int
}

// DebugConfig holds the ops/debug endpoint settings
type DebugConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Upload: UploadConfig{
			MaxBytes:   getEnvInt64OrDefault("UPLOAD_MAX_BYTES", 10<<20),
			SheetLimit: getEnvIntOrDefault("UPLOAD_SHEET_LIMIT", 16),
		},
		Debug: DebugConfig{
			Port:    getEnvOrDefault("DEBUG_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("DEBUG_ENABLED", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
