package config

import (
	"testing"
	"time"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Fatalf("cache should default to enabled")
	}
	if !cfg.Methods["GET"] || cfg.Methods["POST"] {
		t.Fatalf("default methods should be GET only: %v", cfg.Methods)
	}
	if cfg.TTL != 30*time.Second {
		t.Fatalf("ttl = %v", cfg.TTL)
	}
}

func TestLoadCacheConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "2m")
	cfg := LoadCacheConfig()
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] {
		t.Fatalf("methods = %v", cfg.Methods)
	}
	if cfg.TTL != 2*time.Minute {
		t.Fatalf("ttl = %v", cfg.TTL)
	}
}

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Fatalf("capacity = %d, want clamp to 1", cfg.Capacity)
	}
	// TTL below 5x the refill interval gets raised so buckets survive
	// between refills.
	if cfg.TTL != 5*time.Minute {
		t.Fatalf("ttl = %v", cfg.TTL)
	}
}

func TestParseDurFallsBack(t *testing.T) {
	if d := parseDur("nonsense"); d != time.Second {
		t.Fatalf("parseDur fallback = %v", d)
	}
}
