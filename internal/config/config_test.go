package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Relay.Endpoint != DefaultRelayEndpoint {
		t.Errorf("expected default relay endpoint %q, got %q", DefaultRelayEndpoint, cfg.Relay.Endpoint)
	}
	if cfg.Relay.Timeout != 0 {
		t.Errorf("expected no default relay timeout, got %s", cfg.Relay.Timeout)
	}
	if cfg.Session.IdleTTL != 30*time.Minute {
		t.Errorf("expected default idle_ttl 30m, got %s", cfg.Session.IdleTTL)
	}
	if cfg.Site.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.Site.OutputDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.portfolio.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Relay.Endpoint = "https://relay.example.com/send"
	original.Relay.Timeout = 15 * time.Second
	original.Session.IdleTTL = time.Hour
	original.Content.File = "profile.yml"
	original.Log.Level = LogDebug

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Relay.Endpoint != original.Relay.Endpoint {
		t.Errorf("relay endpoint: got %q, want %q", loaded.Relay.Endpoint, original.Relay.Endpoint)
	}
	if loaded.Relay.Timeout != original.Relay.Timeout {
		t.Errorf("relay timeout: got %s, want %s", loaded.Relay.Timeout, original.Relay.Timeout)
	}
	if loaded.Session.IdleTTL != original.Session.IdleTTL {
		t.Errorf("idle_ttl: got %s, want %s", loaded.Session.IdleTTL, original.Session.IdleTTL)
	}
	if loaded.Content.File != original.Content.File {
		t.Errorf("content file: got %q, want %q", loaded.Content.File, original.Content.File)
	}
	if loaded.Log.Level != LogDebug {
		t.Errorf("log level: got %q, want %q", loaded.Log.Level, LogDebug)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Relay.Endpoint != DefaultRelayEndpoint {
		t.Errorf("expected default relay endpoint, got %q", cfg.Relay.Endpoint)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PORTFOLIO_RELAY__ENDPOINT", "https://override.example.com/relay")
	t.Setenv("PORTFOLIO_SERVER__PORT", "7070")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Relay.Endpoint != "https://override.example.com/relay" {
		t.Errorf("env override failed: got %q", loaded.Relay.Endpoint)
	}
	if loaded.Server.Port != 7070 {
		t.Errorf("env override failed: got port %d", loaded.Server.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty endpoint", func(c *Config) { c.Relay.Endpoint = "" }},
		{"non-http endpoint", func(c *Config) { c.Relay.Endpoint = "ftp://relay.example.com" }},
		{"negative timeout", func(c *Config) { c.Relay.Timeout = -time.Second }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"zero idle ttl", func(c *Config) { c.Session.IdleTTL = 0 }},
		{"zero cleanup interval", func(c *Config) { c.Session.CleanupInterval = 0 }},
		{"empty output dir", func(c *Config) { c.Site.OutputDir = "" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRelayEndpointFor(t *testing.T) {
	got := RelayEndpointFor("  ada@example.com ")
	if got != "https://formsubmit.co/ajax/ada@example.com" {
		t.Errorf("got %q", got)
	}
}

func TestWizardValidators(t *testing.T) {
	if err := validateAddress("ada@example.com"); err != nil {
		t.Errorf("valid address rejected: %v", err)
	}
	if err := validateAddress("not-an-address"); err == nil {
		t.Error("expected invalid address to be rejected")
	}
	if err := validatePort("8080"); err != nil {
		t.Errorf("valid port rejected: %v", err)
	}
	for _, p := range []string{"0", "65536", "http"} {
		if err := validatePort(p); err == nil {
			t.Errorf("expected port %q to be rejected", p)
		}
	}
}
