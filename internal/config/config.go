package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	// Application configuration
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string // "json" or "text"

	// Typetalk API configuration
	TypetalkBaseURL string
	TypetalkTimeout time.Duration
	UseMockTypetalk bool

	// AWS Comprehend configuration
	UseMockComprehend  bool
	AWSRegion          string
	ComprehendEndpoint string
	LanguageCode       string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		TypetalkBaseURL: getEnv("TYPETALK_API_BASE_URL", "https://typetalk.com"),
		TypetalkTimeout: getDurationEnv("TYPETALK_TIMEOUT", 0),
		UseMockTypetalk: getBoolEnv("USE_MOCK_TYPETALK_API", false),

		UseMockComprehend:  getBoolEnv("USE_MOCK_AWS_COMPREHEND_API", false),
		AWSRegion:          getEnv("AWS_REGION", "ap-northeast-1"),
		ComprehendEndpoint: getEnv("AWS_COMPREHEND_ENDPOINT", ""),
		LanguageCode:       getEnv("COMPREHEND_LANGUAGE_CODE", "ja"),
	}

	// Validate required configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Level returns the parsed logrus level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'text'")
	}

	if !c.UseMockTypetalk && c.TypetalkBaseURL == "" {
		return fmt.Errorf("TYPETALK_API_BASE_URL is required when the Typetalk mock is disabled")
	}

	if !c.UseMockComprehend && c.AWSRegion == "" {
		return fmt.Errorf("AWS_REGION is required when the AWS Comprehend mock is disabled")
	}

	if c.LanguageCode == "" {
		return fmt.Errorf("COMPREHEND_LANGUAGE_CODE must not be empty")
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
