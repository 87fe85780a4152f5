package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := Load()

		if cfg.ServerAddr != ":8080" {
			t.Errorf("expected default addr :8080, got %s", cfg.ServerAddr)
		}
		if cfg.StorageDriver != "memory" {
			t.Errorf("expected default storage memory, got %s", cfg.StorageDriver)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("expected default log level info, got %s", cfg.LogLevel)
		}
		if cfg.SeedDemoData {
			t.Error("expected demo seeding off by default")
		}
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("SERVER_ADDR", ":9999")
		t.Setenv("STORAGE_DRIVER", "mysql")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("SEED_DEMO_DATA", "true")

		cfg := Load()
		if cfg.ServerAddr != ":9999" {
			t.Errorf("expected :9999, got %s", cfg.ServerAddr)
		}
		if cfg.StorageDriver != "mysql" {
			t.Errorf("expected mysql, got %s", cfg.StorageDriver)
		}
		if cfg.RedisDB != 3 {
			t.Errorf("expected redis db 3, got %d", cfg.RedisDB)
		}
		if !cfg.SeedDemoData {
			t.Error("expected demo seeding on")
		}
	})

	t.Run("InvalidIntFallsBack", func(t *testing.T) {
		t.Setenv("REDIS_DB", "not-a-number")
		if cfg := Load(); cfg.RedisDB != 0 {
			t.Errorf("expected fallback 0, got %d", cfg.RedisDB)
		}
	})
}
