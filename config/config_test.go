package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {

	cfg, err := LoadConfig("")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Scale.Max != 4.0 {
		t.Errorf("expected default scale max 4.0, got %.1f", cfg.Scale.Max)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
redis:
  addr: "localhost:6379"
scale:
  min: 0.0
  max: 10.0
rate_limit:
  requests: 20
  window_seconds: 30
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr, got %q", cfg.Redis.Addr)
	}
	// Escala de 10 puntos, como algunas instituciones.
	if scale := cfg.GradeScale(); scale.Max != 10.0 {
		t.Errorf("expected scale max 10.0, got %.1f", scale.Max)
	}
	if cfg.RateLimit.Requests != 20 {
		t.Errorf("expected 20 requests, got %d", cfg.RateLimit.Requests)
	}
	// Los campos omitidos conservan el default.
	if cfg.Server.ReadTimeoutSeconds != 15 {
		t.Errorf("expected default read timeout, got %d", cfg.Server.ReadTimeoutSeconds)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {

	_, err := LoadConfig("does-not-exist.yaml")

	if err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestValidate_InvalidScale(t *testing.T) {

	cfg := DefaultConfig()
	cfg.Scale.Min = 4.0
	cfg.Scale.Max = 4.0

	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for empty scale range")
	}
}

func TestValidate_InvalidRateLimit(t *testing.T) {

	cfg := DefaultConfig()
	cfg.RateLimit.Requests = 0

	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for zero rate limit")
	}
}
