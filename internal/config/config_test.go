package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/ads")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.Production() {
		t.Error("Production() = true by default")
	}
	if cfg.RateLimitReqs != 100 || cfg.RateLimitWindow != 60 {
		t.Errorf("rate limit defaults = %d/%d", cfg.RateLimitReqs, cfg.RateLimitWindow)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("CORSOrigins = %v, want empty", cfg.CORSOrigins)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig succeeded without DATABASE_URL")
	}
}

func TestProductionMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/ads")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CORS_ORIGINS", "https://panel.example.com, https://admin.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Production() {
		t.Error("Production() = false in release mode")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}
