package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Extraction service
	ProcessorURL     string
	ProcessorTimeout time.Duration

	// Intake
	MaxUploadBytes  int64
	IntakeRateLimit int
	IntakeBurst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		CORSOrigins:      strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		Env:              getEnv("ENV", "development"),
		ProcessorURL:     getEnv("PROCESSOR_URL", ""),
		ProcessorTimeout: getDurationEnv("PROCESSOR_TIMEOUT", 60*time.Second),
		MaxUploadBytes:   getInt64Env("MAX_UPLOAD_BYTES", 32<<20),
		IntakeRateLimit:  getIntEnv("INTAKE_RATE_LIMIT", 10),
		IntakeBurst:      getIntEnv("INTAKE_BURST", 3),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ProcessorURL == "" {
		return fmt.Errorf("PROCESSOR_URL is required")
	}
	if c.ProcessorTimeout <= 0 {
		return fmt.Errorf("PROCESSOR_TIMEOUT must be positive")
	}
	if c.IntakeRateLimit <= 0 || c.IntakeBurst <= 0 {
		return fmt.Errorf("INTAKE_RATE_LIMIT and INTAKE_BURST must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
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
