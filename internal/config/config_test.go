package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWTSecret != DefaultJWTSecret {
		t.Errorf("expected compiled-in default secret, got %s", cfg.JWTSecret)
	}
	if cfg.RateLimitMaxAttempts != 5 {
		t.Errorf("expected 5 attempts, got %d", cfg.RateLimitMaxAttempts)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("expected 1m window, got %s", cfg.RateLimitWindow)
	}
	if cfg.TelegramPollTimeout != 30*time.Second {
		t.Errorf("expected 30s poll timeout, got %s", cfg.TelegramPollTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("RATE_LIMIT_MAX_ATTEMPTS", "3")
	t.Setenv("TELEGRAM_SEND_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "prod-secret" {
		t.Errorf("expected env secret, got %s", cfg.JWTSecret)
	}
	if cfg.RateLimitMaxAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", cfg.RateLimitMaxAttempts)
	}
	if cfg.TelegramSendTimeout != 5*time.Second {
		t.Errorf("expected 5s send timeout, got %s", cfg.TelegramSendTimeout)
	}
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX_ATTEMPTS", "not-a-number")

	cfg := Load()
	if cfg.RateLimitMaxAttempts != 5 {
		t.Errorf("expected fallback to default 5, got %d", cfg.RateLimitMaxAttempts)
	}
}
