package config

import (
	"testing"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hemovigil")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.AlertLookbackDays != 1 {
		t.Errorf("expected default lookback 1 day, got %d", cfg.AlertLookbackDays)
	}
	if cfg.UploadMaxBytes != 10<<20 {
		t.Errorf("expected default upload limit 10 MiB, got %d", cfg.UploadMaxBytes)
	}
	if !cfg.IsDev() {
		t.Error("default env should report IsDev")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hemovigil")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("ALERT_LOOKBACK_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production env")
	}
	if cfg.AlertLookbackDays != 7 {
		t.Errorf("expected lookback 7, got %d", cfg.AlertLookbackDays)
	}
}

func TestResolvedAuthMode(t *testing.T) {
	cases := []struct {
		env, mode, want string
	}{
		{"development", "", "development"},
		{"production", "", "jwt"},
		{"development", "jwt", "jwt"},
		{"production", "development", "development"},
	}
	for _, tc := range cases {
		cfg := &Config{Env: tc.env, AuthMode: tc.mode}
		if got := cfg.ResolvedAuthMode(); got != tc.want {
			t.Errorf("env=%s auth_mode=%s: expected %s, got %s", tc.env, tc.mode, tc.want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	base := Config{Env: "production", JWTSecret: "secret", AlertLookbackDays: 1, UploadMaxBytes: 1024}
	if err := base.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	noSecret := base
	noSecret.JWTSecret = ""
	if err := noSecret.Validate(); err == nil {
		t.Error("jwt mode without secret must be rejected")
	}

	devNoSecret := Config{Env: "development", AlertLookbackDays: 1, UploadMaxBytes: 1024}
	if err := devNoSecret.Validate(); err != nil {
		t.Errorf("development mode should not require a secret: %v", err)
	}

	badMode := base
	badMode.AuthMode = "none"
	if err := badMode.Validate(); err == nil {
		t.Error("unknown auth mode must be rejected")
	}

	badLookback := base
	badLookback.AlertLookbackDays = 0
	if err := badLookback.Validate(); err == nil {
		t.Error("non-positive lookback must be rejected")
	}

	badUpload := base
	badUpload.UploadMaxBytes = 0
	if err := badUpload.Validate(); err == nil {
		t.Error("non-positive upload limit must be rejected")
	}
}
