package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFiles()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderESPN {
		t.Fatalf("expected default provider espn, got %s", cfg.Provider)
	}
	if cfg.OwnershipURL != "" {
		t.Fatalf("expected no ownership url by default, got %s", cfg.OwnershipURL)
	}
	if cfg.DisplayTimezone != "America/New_York" {
		t.Fatalf("unexpected display timezone %s", cfg.DisplayTimezone)
	}
	if cfg.AggregationConcurrency != 1 {
		t.Fatalf("expected sequential aggregation by default, got %d", cfg.AggregationConcurrency)
	}
	if cfg.Cache.Backend != CacheBackendMemory || cfg.Cache.TTL != 5*time.Minute || cfg.Cache.Prefix != "pool:" {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
	if cfg.Upstream.Timeout != 10*time.Second || cfg.Upstream.BreakerEnabled {
		t.Fatalf("unexpected upstream defaults %+v", cfg.Upstream)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" || cfg.Metrics.ServiceName != "nfl-pool-service" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Warm.Enabled() {
		t.Fatal("expected warmer disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("PROVIDER", " Fixture ")
	t.Setenv("OWNERSHIP_URL", "https://example.com/pool.json")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ESPN_BASE_URL", "http://upstream.test")
	t.Setenv("UPSTREAM_BREAKER_ENABLED", "true")
	t.Setenv("AGGREGATION_CONCURRENCY", "4")
	t.Setenv("WARM_SCHEDULE", "*/5 * * * *")
	t.Setenv("LOG_FORMAT", "TEXT")

	cfg, err := LoadFiles()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if cfg.Port != "5000" || cfg.Provider != ProviderFixture {
		t.Fatalf("unexpected top-level overrides %+v", cfg)
	}
	if cfg.OwnershipURL != "https://example.com/pool.json" {
		t.Fatalf("unexpected ownership url %s", cfg.OwnershipURL)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.TTL != 90*time.Second || cfg.Cache.RedisAddr != "cache:6380" || cfg.Cache.RedisDB != 2 {
		t.Fatalf("unexpected cache overrides %+v", cfg.Cache)
	}
	if cfg.Upstream.BaseURL != "http://upstream.test" || !cfg.Upstream.BreakerEnabled {
		t.Fatalf("unexpected upstream overrides %+v", cfg.Upstream)
	}
	if cfg.AggregationConcurrency != 4 || !cfg.Warm.Enabled() || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		key, val, want string
	}{
		{"PROVIDER", "sportradar", "PROVIDER"},
		{"CACHE_BACKEND", "memcached", "CACHE_BACKEND"},
		{"CACHE_TTL", "0s", "CACHE_TTL"},
		{"CACHE_TTL", "soon", "CACHE_TTL"},
		{"LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"REDIS_DB", "zero", "REDIS_DB"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := LoadFiles()
			if err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadClampsConcurrency(t *testing.T) {
	t.Setenv("AGGREGATION_CONCURRENCY", "0")
	cfg, err := LoadFiles()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.AggregationConcurrency != 1 {
		t.Fatalf("expected clamp to 1, got %d", cfg.AggregationConcurrency)
	}
}

func TestLoadFilesReadsDotEnvWithoutOverriding(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	contents := "DISPLAY_TIMEZONE=America/Denver\nCACHE_PREFIX=dotenv:\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("CACHE_PREFIX", "env:")
	t.Cleanup(func() { _ = os.Unsetenv("DISPLAY_TIMEZONE") })

	cfg, err := LoadFiles(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.DisplayTimezone != "America/Denver" {
		t.Fatalf("expected dotenv value, got %s", cfg.DisplayTimezone)
	}
	if cfg.Cache.Prefix != "env:" {
		t.Fatalf("expected process env to win, got %s", cfg.Cache.Prefix)
	}
}

func TestLoadFilesRejectsMalformedDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BAD-KEY=value\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	if _, err := LoadFiles(path); err == nil {
		t.Fatal("expected malformed dotenv error")
	}
}
