package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AmineOuatt/othello-game/othello"
)

func TestLoadConfigFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ai_depth": 5, "ghost_mode": true}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	config, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	defaults := DefaultConfig()
	if config.AiDepth != 5 || !config.GhostMode {
		t.Fatalf("file values not applied: %+v", config)
	}
	if config.HintDepth != defaults.HintDepth || config.ListenAddr != defaults.ListenAddr {
		t.Fatalf("fields missing from the file should keep defaults: %+v", config)
	}
}

func TestLoadConfigFileRejectsBadDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ai_depth": 0}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfigFile(path); !errors.Is(err, othello.ErrInvalidDepth) {
		t.Fatalf("expected ErrInvalidDepth, got %v", err)
	}
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestGameSettingsValidate(t *testing.T) {
	settings := GameSettings{BlackType: PlayerHuman, WhiteType: PlayerAI, BlackDepth: 0, WhiteDepth: 3}
	if err := settings.Validate(); err != nil {
		t.Fatalf("human depth is irrelevant, got %v", err)
	}
	settings.WhiteDepth = 0
	if err := settings.Validate(); !errors.Is(err, othello.ErrInvalidDepth) {
		t.Fatalf("expected ErrInvalidDepth for AI depth 0, got %v", err)
	}
}
