package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}

	if cfg.Poll.MarketInterval != 60*time.Second {
		t.Errorf("expected market interval 60s, got %v", cfg.Poll.MarketInterval)
	}

	if cfg.Poll.MonitorInterval != 30*time.Second {
		t.Errorf("expected monitor interval 30s, got %v", cfg.Poll.MonitorInterval)
	}

	if cfg.TUI.RefreshRate != 100*time.Millisecond {
		t.Errorf("expected refresh rate 100ms, got %v", cfg.TUI.RefreshRate)
	}

	if cfg.AI.Backend != "proxy" {
		t.Errorf("expected proxy AI backend, got %q", cfg.AI.Backend)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("expected info log level, got %q", cfg.Log.Level)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `api:
  base_url: https://dashboard.example.com
  timeout: 5s
poll:
  market_interval: 90s
ai:
  backend: anthropic
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.API.BaseURL != "https://dashboard.example.com" {
		t.Errorf("base URL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.API.Timeout)
	}
	if cfg.Poll.MarketInterval != 90*time.Second {
		t.Errorf("market interval = %v, want 90s", cfg.Poll.MarketInterval)
	}
	// Unspecified values keep their defaults.
	if cfg.Poll.MonitorInterval != 30*time.Second {
		t.Errorf("monitor interval = %v, want default 30s", cfg.Poll.MonitorInterval)
	}
	if cfg.AI.Backend != "anthropic" {
		t.Errorf("ai backend = %q, want anthropic", cfg.AI.Backend)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFromPathExpandsEnv(t *testing.T) {
	os.Setenv("PAIID_TEST_KEY", "sk-ant-from-env-12345678")
	defer os.Unsetenv("PAIID_TEST_KEY")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "ai:\n  api_key: ${PAIID_TEST_KEY}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.AI.APIKey != "sk-ant-from-env-12345678" {
		t.Errorf("api key = %q, env reference not expanded", cfg.AI.APIKey)
	}
}
