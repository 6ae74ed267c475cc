package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"ideaspark/internal/llm"
)

// Config holds all configuration values, built once at startup.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	HTTPTimeout time.Duration
	MaxAttempts int
	LogLevel    string
}

// LoadConfig loads configuration from environment variables. A local .env
// file is honored if present. A missing GOOGLE_API_KEY is an auth error
// reported before any network attempt.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, &llm.AuthError{Reason: "GOOGLE_API_KEY environment variable is not set"}
	}

	timeout, err := parseDuration(getEnv("IDEASPARK_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("parse IDEASPARK_HTTP_TIMEOUT: %w", err)
	}

	maxAttempts, err := strconv.Atoi(getEnv("IDEASPARK_MAX_ATTEMPTS", "3"))
	if err != nil {
		return nil, fmt.Errorf("parse IDEASPARK_MAX_ATTEMPTS: %w", err)
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("IDEASPARK_MAX_ATTEMPTS must be at least 1")
	}

	return &Config{
		APIKey:      apiKey,
		Model:       getEnv("IDEASPARK_MODEL", "gemini-2.5-flash"),
		BaseURL:     getEnv("IDEASPARK_BASE_URL", llm.DefaultBaseURL),
		HTTPTimeout: timeout,
		MaxAttempts: maxAttempts,
		LogLevel:    getEnv("IDEASPARK_LOG_LEVEL", "warn"),
	}, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}
