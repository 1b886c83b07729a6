package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DOCBRIDGE_CONFIG", "")
	t.Setenv("DOCBRIDGE_BASE_URL", "")
	t.Setenv("DOCBRIDGE_POLL_INTERVAL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.PollInterval != 3*time.Second {
		t.Fatalf("expected default poll interval 3s, got %v", cfg.PollInterval)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected default request timeout 30s, got %v", cfg.RequestTimeout)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docbridge.yaml")
	content := "base_url: https://docs.example.com\npoll_interval: 5s\nrate_limit: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DOCBRIDGE_CONFIG", path)
	t.Setenv("DOCBRIDGE_BASE_URL", "")
	t.Setenv("DOCBRIDGE_POLL_INTERVAL", "")
	t.Setenv("DOCBRIDGE_RATE_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://docs.example.com" {
		t.Fatalf("expected file base url, got %q", cfg.BaseURL)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("expected file poll interval 5s, got %v", cfg.PollInterval)
	}
	if cfg.RateLimit != 10 {
		t.Fatalf("expected file rate limit 10, got %v", cfg.RateLimit)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docbridge.yaml")
	if err := os.WriteFile(path, []byte("base_url: https://file.example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DOCBRIDGE_CONFIG", path)
	t.Setenv("DOCBRIDGE_BASE_URL", "https://env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Fatalf("environment must win over the file, got %q", cfg.BaseURL)
	}
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	t.Setenv("DOCBRIDGE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadIgnoresMalformedEnvValues(t *testing.T) {
	t.Setenv("DOCBRIDGE_CONFIG", "")
	t.Setenv("DOCBRIDGE_POLL_INTERVAL", "not-a-duration")
	t.Setenv("DOCBRIDGE_RATE_BURST", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollInterval != 3*time.Second {
		t.Fatalf("malformed duration must fall back, got %v", cfg.PollInterval)
	}
	if cfg.RateBurst != 1 {
		t.Fatalf("malformed int must fall back, got %d", cfg.RateBurst)
	}
}
