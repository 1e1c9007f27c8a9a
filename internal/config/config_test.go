package config

import (
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATA_DIR", "PLAN_STATE_PATH", "DATABASE_PATH", "PORT", "JWT_SECRET",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_WEBHOOK_URL", "TELEGRAM_ALLOWED_USER_IDS",
		"ADMIN_TELEGRAM_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestNewFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
	if cfg.StatePath != filepath.Join("data", "plan_state.json") {
		t.Errorf("unexpected state path %q", cfg.StatePath)
	}
	if cfg.DatabasePath != filepath.Join("data", "menu_planner.db") {
		t.Errorf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("expected empty JWT secret by default, got %q", cfg.JWTSecret)
	}
}

func TestNewFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/var/planner")
	t.Setenv("PLAN_STATE_PATH", "/tmp/state.json")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "sekrit")

	cfg, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}

	if cfg.StatePath != "/tmp/state.json" {
		t.Errorf("override ignored, got %q", cfg.StatePath)
	}
	// Database path still derives from the overridden data dir.
	if cfg.DatabasePath != filepath.Join("/var/planner", "menu_planner.db") {
		t.Errorf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.Port != "9090" || cfg.JWTSecret != "sekrit" {
		t.Errorf("unexpected port/secret: %q/%q", cfg.Port, cfg.JWTSecret)
	}
}

func TestNewFromEnvTelegramIDs(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_ALLOWED_USER_IDS", "123, 456,789")
	t.Setenv("ADMIN_TELEGRAM_ID", "123")

	cfg, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}

	want := []int64{123, 456, 789}
	if len(cfg.TelegramAllowedUserIDs) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(cfg.TelegramAllowedUserIDs))
	}
	for i, id := range want {
		if cfg.TelegramAllowedUserIDs[i] != id {
			t.Errorf("id[%d] = %d, want %d", i, cfg.TelegramAllowedUserIDs[i], id)
		}
	}
	if cfg.AdminTelegramID != 123 {
		t.Errorf("expected admin id 123, got %d", cfg.AdminTelegramID)
	}
}

func TestNewFromEnvBadTelegramIDs(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_ALLOWED_USER_IDS", "123,abc")

	if _, err := NewFromEnv(); err == nil {
		t.Error("expected error for non-numeric allowed user id")
	}
}
