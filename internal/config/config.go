package config

import (
	"os"
	"strconv"

	"diascope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Export ExportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds dataset source settings
type DataConfig struct {
	// File is the tabular dataset read once at startup. CSV and XLSX are
	// supported; anything else fails the load.
	File string
}

// ExportConfig holds workbook export settings
type ExportConfig struct {
	// RowLimit caps the rows written per export sheet so a pathological
	// grouping cannot produce an unbounded workbook.
	RowLimit int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			File: getEnvOrDefault("DATA_FILE", "data/diabetes_clean.csv"),
		},
		Export: ExportConfig{
			RowLimit: getEnvIntOrDefault("EXPORT_ROW_LIMIT", 10000),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE must not be empty")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Export.RowLimit < 1 {
		return errors.ConfigInvalid("EXPORT_ROW_LIMIT must be positive")
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
