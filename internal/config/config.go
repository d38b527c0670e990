package config

import (
	"os"
	"strconv"

	"chromacull/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Curation CurationConfig
	Paths    PathConfig
}

// CurationConfig holds pipeline tuning settings
type CurationConfig struct {
	TargetSize       int
	MinCoverage      float64
	MinFamilies      int
	PreserveExtremes bool
}

// PathConfig holds file system paths
type PathConfig struct {
	InputFile    string
	OutputFile   string
	PriorityFile string
	ReportFile   string
}

// Load builds configuration from environment variables. Every setting has a
// default; only nonsensical values fail validation.
func Load() (*Config, error) {
	config := &Config{
		Curation: CurationConfig{
			TargetSize:       getEnvIntOrDefault("TARGET_SIZE", 0),
			MinCoverage:      getEnvFloatOrDefault("MIN_COVERAGE", 0.85),
			MinFamilies:      getEnvIntOrDefault("MIN_FAMILIES", 0),
			PreserveExtremes: getEnvBoolOrDefault("PRESERVE_EXTREMES", true),
		},
		Paths: PathConfig{
			InputFile:    getEnvOrDefault("INPUT_FILE", ""),
			OutputFile:   getEnvOrDefault("OUTPUT_FILE", "curated.xlsx"),
			PriorityFile: getEnvOrDefault("PRIORITY_FILE", ""),
			ReportFile:   getEnvOrDefault("REPORT_FILE", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Curation.TargetSize < 0 {
		return errors.ConfigInvalid("TARGET_SIZE must not be negative")
	}
	if config.Curation.MinCoverage < 0 || config.Curation.MinCoverage > 1 {
		return errors.ConfigInvalid("MIN_COVERAGE must be between 0 and 1")
	}
	if config.Curation.MinFamilies < 0 {
		return errors.ConfigInvalid("MIN_FAMILIES must not be negative")
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
