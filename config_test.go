package main

import (
	"errors"
	"testing"
	"time"

	"ideaspark/internal/llm"
)

func TestLoadConfigMissingKeyIsAuthError(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := LoadConfig()
	var authErr *llm.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("IDEASPARK_MODEL", "")
	t.Setenv("IDEASPARK_BASE_URL", "")
	t.Setenv("IDEASPARK_HTTP_TIMEOUT", "")
	t.Setenv("IDEASPARK_MAX_ATTEMPTS", "")
	t.Setenv("IDEASPARK_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "k" {
		t.Fatalf("unexpected api key: %q", cfg.APIKey)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected default model: %q", cfg.Model)
	}
	if cfg.BaseURL != llm.DefaultBaseURL {
		t.Fatalf("unexpected default base URL: %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.HTTPTimeout)
	}
	if cfg.MaxAttempts != 3 {
		t.Fatalf("unexpected default attempts: %d", cfg.MaxAttempts)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("unexpected default log level: %q", cfg.LogLevel)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("IDEASPARK_MODEL", "gemini-2.5-pro")
	t.Setenv("IDEASPARK_HTTP_TIMEOUT", "5s")
	t.Setenv("IDEASPARK_MAX_ATTEMPTS", "1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Fatalf("unexpected model: %q", cfg.Model)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.HTTPTimeout)
	}
	if cfg.MaxAttempts != 1 {
		t.Fatalf("unexpected attempts: %d", cfg.MaxAttempts)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")

	t.Setenv("IDEASPARK_HTTP_TIMEOUT", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
	t.Setenv("IDEASPARK_HTTP_TIMEOUT", "30s")

	t.Setenv("IDEASPARK_MAX_ATTEMPTS", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero attempts")
	}
}
