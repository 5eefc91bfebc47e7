package showcase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/folio/internal/candle"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/morph"
	"github.com/olivier-w/folio/internal/motion"
	"go.uber.org/zap"
)

// Options wires the showcase components together.
type Options struct {
	FPS            int
	Spring         motion.SpringParams
	HideSortAt     float64
	Candle         candle.Params
	Timing         morph.Timing
	ResizeDebounce time.Duration
	InitialSort    string
	Rand           *rand.Rand
	Log            *zap.Logger
}

// OptionsFromConfig converts loaded configuration into Options. A zero seed
// seeds the random sort from the clock.
func OptionsFromConfig(cfg *config.Config, log *zap.Logger) (Options, error) {
	bg, err := colorful.Hex(cfg.Candle.Background)
	if err != nil {
		return Options{}, fmt.Errorf("candle.background %q: %w", cfg.Candle.Background, err)
	}
	seed := cfg.Catalog.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Options{
		FPS: cfg.UI.FPS,
		Spring: motion.SpringParams{
			Stiffness: cfg.Motion.Stiffness,
			Damping:   cfg.Motion.Damping,
			Mass:      cfg.Motion.Mass,
		},
		HideSortAt: cfg.Motion.HideSortAt,
		Candle: candle.Params{
			MinScale:      cfg.Candle.MinScale,
			MaxScale:      cfg.Candle.MaxScale,
			Base:          cfg.Candle.Base,
			VelocityRange: cfg.Candle.VelocityRange,
			Hue:           cfg.Candle.Hue,
			Lightness:     cfg.Candle.Lightness,
			Background:    bg,
		},
		Timing: morph.Timing{
			Expand:     cfg.Morph.ExpandDuration,
			Exit:       cfg.Morph.ExitDuration,
			CloseDelay: cfg.Morph.CloseDelay,
			ExitLift:   cfg.Morph.ExitLift,
			Easing:     morph.EasingByName(cfg.Morph.Easing),
		},
		ResizeDebounce: cfg.UI.ResizeDebounce,
		InitialSort:    cfg.Catalog.Sort,
		Rand:           rand.New(rand.NewSource(seed)),
		Log:            log,
	}, nil
}
