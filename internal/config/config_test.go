package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SUPERTUI_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Layout.DefaultMode != "auto" {
		t.Fatalf("default mode = %q, want auto", cfg.Layout.DefaultMode)
	}
	if cfg.UI.FlashMs != 300 {
		t.Fatalf("flash_ms = %d, want 300", cfg.UI.FlashMs)
	}
	if cfg.Database.Path == "" || cfg.Logging.Path == "" {
		t.Fatalf("paths not defaulted: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("SUPERTUI_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	cfg.Layout.DefaultMode = "grid"
	cfg.UI.FlashMs = 150
	cfg.UI.Accent = "#89b4fa"
	cfg.Keys = map[string][]string{"close-pane": {"ctrl+x"}}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Layout.DefaultMode != "grid" {
		t.Fatalf("default mode = %q, want grid", got.Layout.DefaultMode)
	}
	if got.UI.FlashMs != 150 {
		t.Fatalf("flash_ms = %d, want 150", got.UI.FlashMs)
	}
	if got.UI.Accent != "#89b4fa" {
		t.Fatalf("accent = %q", got.UI.Accent)
	}
	if len(got.Keys["close-pane"]) != 1 || got.Keys["close-pane"][0] != "ctrl+x" {
		t.Fatalf("keys = %+v", got.Keys)
	}
}
