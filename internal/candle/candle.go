// Package candle derives the per-project indicator bars drawn under the
// carousel. Each bar grows with its proximity to the current scroll
// position and with how fast the carousel is moving.
package candle

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/folio/internal/motion"
)

// Params configures the candle mapping.
type Params struct {
	MinScale      float64
	MaxScale      float64
	Base          float64
	VelocityRange float64 // |velocity| that maps to a full signal
	Hue           float64
	Lightness     float64
	Background    colorful.Color
}

// Candle is the paint state of one indicator.
type Candle struct {
	Index     int
	Factor    float64 // in [MinScale, MaxScale]
	Magnitude float64
	Opacity   float64        // in [0,1]
	Color     colorful.Color // hue at Factor, before opacity
	Paint     colorful.Color // Color blended over the background by Opacity
}

// Controller keeps one candle per catalog index. Update is called once per
// frame after the motion state has been stepped.
type Controller struct {
	params  Params
	signal  motion.Spring
	candles []Candle
}

// New creates a controller for n candles. The velocity signal is smoothed
// by its own spring stepping at fps.
func New(n, fps int, spring motion.SpringParams, p Params) *Controller {
	if p.MaxScale < p.MinScale {
		p.MaxScale = p.MinScale
	}
	c := &Controller{
		params: p,
		signal: motion.NewSpring(fps, spring),
	}
	c.Resize(n)
	return c
}

// Resize changes the number of candles, resetting them to rest.
func (c *Controller) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if len(c.candles) == n {
		return
	}
	c.candles = make([]Candle, n)
	for i := range c.candles {
		c.candles[i] = c.paint(i, 0)
	}
}

// VelocitySignal maps a velocity onto [0,1] by magnitude.
func VelocitySignal(velocity, velocityRange float64) float64 {
	if velocityRange <= 0 || math.IsNaN(velocity) {
		return 0
	}
	return motion.Clamp01(math.Abs(velocity) / velocityRange)
}

// Update recomputes every candle from progress and velocity.
func (c *Controller) Update(progress, velocity float64) {
	signal := c.signal.Step(VelocitySignal(velocity, c.params.VelocityRange))
	if signal < 0 {
		signal = 0
	}
	n := float64(len(c.candles))
	for i := range c.candles {
		proximity := 1 - math.Abs(float64(i)/n-progress)
		cd := c.paint(i, proximity)
		cd.Magnitude = c.params.Base + signal*cd.Factor*cd.Factor
		c.candles[i] = cd
	}
}

// Factor returns the scale factor for a proximity in [0,1].
func (c *Controller) Factor(proximity float64) float64 {
	p := c.params
	return p.MinScale + (p.MaxScale-p.MinScale)*motion.Clamp01(proximity)
}

func (c *Controller) paint(i int, proximity float64) Candle {
	p := c.params
	factor := c.Factor(proximity)
	t := 0.0
	if p.MaxScale > p.MinScale {
		t = (factor - p.MinScale) / (p.MaxScale - p.MinScale)
	}
	col := colorful.Hsl(p.Hue, t, p.Lightness).Clamped()
	return Candle{
		Index:     i,
		Factor:    factor,
		Magnitude: p.Base,
		Opacity:   t,
		Color:     col,
		Paint:     p.Background.BlendRgb(col, t).Clamped(),
	}
}

// Candles returns the current candles in catalog order.
func (c *Controller) Candles() []Candle {
	out := make([]Candle, len(c.candles))
	copy(out, c.candles)
	return out
}

// Signal returns the smoothed velocity signal.
func (c *Controller) Signal() float64 { return c.signal.Position() }

// IndexPercent returns i/n, the position of candle i along the range.
func IndexPercent(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) / float64(n)
}
