package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LEADS_WEBHOOK_URL", "")
	t.Setenv("GEOFENCE_ENABLED", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected empty database url, got %s", cfg.DatabaseURL)
	}
	if cfg.LeadsWebhookURL != "" {
		t.Fatalf("expected relay disabled by default, got %s", cfg.LeadsWebhookURL)
	}
	if cfg.WebhookTimeout != 10*time.Second {
		t.Fatalf("expected default webhook timeout, got %s", cfg.WebhookTimeout)
	}
	if !cfg.GeofenceEnabled {
		t.Fatalf("expected geofence enabled by default")
	}
	if cfg.GeofenceCountry != "US" {
		t.Fatalf("expected default geofence country, got %s", cfg.GeofenceCountry)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("expected default rate limit, got %f/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("LEADS_WEBHOOK_URL", "https://hooks.example.com/abc")
	t.Setenv("WEBHOOK_TIMEOUT", "3s")
	t.Setenv("GEOFENCE_ENABLED", "false")
	t.Setenv("GEOFENCE_ALLOWED_COUNTRY", "CA")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.LeadsWebhookURL != "https://hooks.example.com/abc" {
		t.Fatalf("expected webhook override, got %s", cfg.LeadsWebhookURL)
	}
	if cfg.WebhookTimeout != 3*time.Second {
		t.Fatalf("expected webhook timeout override, got %s", cfg.WebhookTimeout)
	}
	if cfg.GeofenceEnabled {
		t.Fatalf("expected geofence disabled")
	}
	if cfg.GeofenceCountry != "CA" {
		t.Fatalf("expected geofence country override, got %s", cfg.GeofenceCountry)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected trimmed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 4 {
		t.Fatalf("expected rate limit override, got %f/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("WEBHOOK_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.WebhookTimeout != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %s", cfg.WebhookTimeout)
	}
}
