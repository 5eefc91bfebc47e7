package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. FOLIO_MOTION_STIFFNESS.
const EnvPrefix = "FOLIO_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < environment.
// Flags are applied by the caller afterwards. An empty path searches the
// standard locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the showcase cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Motion.Stiffness <= 0:
		return fmt.Errorf("%w: motion.stiffness must be positive", ErrInvalid)
	case c.Motion.Mass <= 0:
		return fmt.Errorf("%w: motion.mass must be positive", ErrInvalid)
	case c.Motion.Damping < 0:
		return fmt.Errorf("%w: motion.damping must not be negative", ErrInvalid)
	case c.Candle.MaxScale < c.Candle.MinScale:
		return fmt.Errorf("%w: candle.max_scale below candle.min_scale", ErrInvalid)
	case c.UI.FPS <= 0 || c.UI.FPS > 240:
		return fmt.Errorf("%w: ui.fps must be in 1..240", ErrInvalid)
	case c.UI.SlotWidth < 8:
		return fmt.Errorf("%w: ui.slot_width must be at least 8", ErrInvalid)
	case c.Morph.ExpandDuration < 0 || c.Morph.ExitDuration < 0 || c.Morph.CloseDelay < 0:
		return fmt.Errorf("%w: morph durations must not be negative", ErrInvalid)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./folio.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "folio")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "folio")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "folio")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "folio")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
