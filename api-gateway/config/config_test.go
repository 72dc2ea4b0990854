package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CATALOG_SERVICE_URL", "")
	t.Setenv("GATEWAY_PORT", "")
	t.Setenv("GATEWAY_CACHE_TTL", "")

	cfg := LoadConfig()
	if cfg.Port != "8000" {
		t.Fatalf("port %q", cfg.Port)
	}
	if cfg.Upstream.BaseURL != "http://localhost:8081" || cfg.Upstream.HealthCheck != "/health" {
		t.Fatalf("upstream %+v", cfg.Upstream)
	}
	if cfg.CacheTTL != time.Minute || cfg.RateLimit != 100 {
		t.Fatalf("cache %v limit %d", cfg.CacheTTL, cfg.RateLimit)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CATALOG_SERVICE_URL", "http://catalog:8081")
	t.Setenv("GATEWAY_RATE_LIMIT", "20")
	t.Setenv("GATEWAY_CACHE_TTL", "bogus")

	cfg := LoadConfig()
	if cfg.Upstream.BaseURL != "http://catalog:8081" {
		t.Fatalf("base url %q", cfg.Upstream.BaseURL)
	}
	if cfg.RateLimit != 20 {
		t.Fatalf("rate limit %d", cfg.RateLimit)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("invalid ttl should fall back, got %v", cfg.CacheTTL)
	}
}
