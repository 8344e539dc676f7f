package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "TZ"} {
		// t.Setenv registers the restore; Unsetenv clears for the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBPath != filepath.Join("data", "weekmark.db") {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.TimeZone != "UTC" {
		t.Fatalf("expected default timezone UTC, got %q", cfg.TimeZone)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/records.db")
	t.Setenv("TZ", "Europe/Moscow")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.DBPath != "/tmp/records.db" {
		t.Fatalf("expected db path override, got %q", cfg.DBPath)
	}
	if cfg.TimeZone != "Europe/Moscow" {
		t.Fatalf("expected timezone override, got %q", cfg.TimeZone)
	}
}
