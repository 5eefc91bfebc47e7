package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestLoadLayersFileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	content := "motion:\n  stiffness: 250\n  damping: 30\nmorph:\n  expand_duration: 750ms\nui:\n  fps: 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FOLIO_MOTION_DAMPING", "44")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Motion.Stiffness != 250 {
		t.Fatalf("stiffness = %v, want 250 from file", cfg.Motion.Stiffness)
	}
	if cfg.Motion.Damping != 44 {
		t.Fatalf("damping = %v, want 44 from env", cfg.Motion.Damping)
	}
	if cfg.Morph.ExpandDuration != 750*time.Millisecond {
		t.Fatalf("expand duration = %v, want 750ms", cfg.Morph.ExpandDuration)
	}
	if cfg.UI.FPS != 30 {
		t.Fatalf("fps = %d, want 30", cfg.UI.FPS)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Candle.MaxScale != 2 {
		t.Fatalf("max scale = %v, want default 2", cfg.Candle.MaxScale)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("candle:\n  min_scale: 3\n  max_scale: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load() error = %v, want ErrInvalid", err)
	}
}
