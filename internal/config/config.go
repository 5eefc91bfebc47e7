// Package config handles showcase configuration loading.
package config

import "time"

// Config holds all showcase settings.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog" envPrefix:"CATALOG_"`
	Motion  MotionConfig  `yaml:"motion" envPrefix:"MOTION_"`
	Candle  CandleConfig  `yaml:"candle" envPrefix:"CANDLE_"`
	Morph   MorphConfig   `yaml:"morph" envPrefix:"MORPH_"`
	UI      UIConfig      `yaml:"ui" envPrefix:"UI_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
}

// CatalogConfig selects the project catalog.
type CatalogConfig struct {
	Path string `yaml:"path" env:"PATH"` // empty uses the embedded catalog
	Sort string `yaml:"sort" env:"SORT"` // initial sort criterion
	Seed int64  `yaml:"seed" env:"SEED"` // random sort seed, 0 picks one from the clock
}

// MotionConfig holds the drag spring settings.
type MotionConfig struct {
	Stiffness float64 `yaml:"stiffness" env:"STIFFNESS"`
	Damping   float64 `yaml:"damping" env:"DAMPING"`
	Mass      float64 `yaml:"mass" env:"MASS"`
	// HideSortAt is the raw offset past which the sort panel slides away.
	HideSortAt float64 `yaml:"hide_sort_at" env:"HIDE_SORT_AT"`
}

// CandleConfig holds index visualizer settings.
type CandleConfig struct {
	MinScale      float64 `yaml:"min_scale" env:"MIN_SCALE"`
	MaxScale      float64 `yaml:"max_scale" env:"MAX_SCALE"`
	Base          float64 `yaml:"base" env:"BASE"`
	VelocityRange float64 `yaml:"velocity_range" env:"VELOCITY_RANGE"` // cells/s mapped to a full signal
	Hue           float64 `yaml:"hue" env:"HUE"`
	Lightness     float64 `yaml:"lightness" env:"LIGHTNESS"`
	Background    string  `yaml:"background" env:"BACKGROUND"`
}

// MorphConfig holds detail transition timings.
type MorphConfig struct {
	ExpandDuration time.Duration `yaml:"expand_duration" env:"EXPAND_DURATION"`
	ExitDuration   time.Duration `yaml:"exit_duration" env:"EXIT_DURATION"`
	CloseDelay     time.Duration `yaml:"close_delay" env:"CLOSE_DELAY"`
	ExitLift       float64       `yaml:"exit_lift" env:"EXIT_LIFT"`
	Easing         string        `yaml:"easing" env:"EASING"` // linear, ease-out, smoothstep, ease-in-out
}

// UIConfig holds terminal rendering settings.
type UIConfig struct {
	FPS            int           `yaml:"fps" env:"FPS"`
	SlotWidth      int           `yaml:"slot_width" env:"SLOT_WIDTH"`
	ResizeDebounce time.Duration `yaml:"resize_debounce" env:"RESIZE_DEBOUNCE"`
	NudgeStep      float64       `yaml:"nudge_step" env:"NUDGE_STEP"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	LogFile string `yaml:"log_file" env:"FILE"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Sort: "date",
		},
		Motion: MotionConfig{
			Stiffness:  400,
			Damping:    50,
			Mass:       1,
			HideSortAt: -10,
		},
		Candle: CandleConfig{
			MinScale:      0.2,
			MaxScale:      2,
			Base:          0.2,
			VelocityRange: 200,
			Hue:           262,
			Lightness:     0.75,
			Background:    "#1a1a1a",
		},
		Morph: MorphConfig{
			ExpandDuration: 500 * time.Millisecond,
			ExitDuration:   300 * time.Millisecond,
			CloseDelay:     200 * time.Millisecond,
			ExitLift:       0.2,
			Easing:         "ease-in-out",
		},
		UI: UIConfig{
			FPS:            60,
			SlotWidth:      24,
			ResizeDebounce: 150 * time.Millisecond,
			NudgeStep:      12,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
