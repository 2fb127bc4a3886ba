package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "APP_DEBUG", "APP_VERSION", "ACTIVITY_DB_DSN", "REDIS_ADDR", "ACTIVITY_BATCH_SIZE", "ACTIVITY_FLUSH_INTERVAL"} {
		t.Setenv(k, "")
	}
	cfg, _ := Load()

	if cfg.Addr() != "0.0.0.0:5000" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
	if !cfg.Server.Debug || cfg.Server.Version != "1.0.0" {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Activity.DSN != "" || cfg.Redis.Addr != "" {
		t.Fatalf("sinks must be disabled by default")
	}
	if cfg.Activity.BatchSize != 100 || cfg.Activity.FlushInterval != 2*time.Second {
		t.Fatalf("unexpected activity config: %+v", cfg.Activity)
	}
}

func TestLoadOverridesAndFallbacks(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("ACTIVITY_BATCH_SIZE", "abc")
	t.Setenv("ACTIVITY_FLUSH_INTERVAL", "500ms")
	t.Setenv("REDIS_DB", "3")

	cfg, warnings := Load()
	if cfg.Server.Port != "8081" || cfg.Server.Debug {
		t.Fatalf("overrides not applied: %+v", cfg.Server)
	}
	if cfg.Activity.BatchSize != 100 {
		t.Fatalf("invalid batch size must fall back, got %d", cfg.Activity.BatchSize)
	}
	if cfg.Activity.FlushInterval != 500*time.Millisecond || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected values: %+v %+v", cfg.Activity, cfg.Redis)
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "ACTIVITY_BATCH_SIZE") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a warning for ACTIVITY_BATCH_SIZE, got %v", warnings)
	}
}
