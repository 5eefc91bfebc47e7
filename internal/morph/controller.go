// Package morph implements the shared-element transition that grows a
// carousel slot into the detail view and dismisses it again.
package morph

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrTransitionBusy is returned by Select while a dismissal is running.
	ErrTransitionBusy = errors.New("transition is collapsing")

	// ErrEmptyID is returned by Select for an empty id.
	ErrEmptyID = errors.New("empty item id")
)

// State is the phase of the transition.
type State int

const (
	Idle State = iota
	Expanding
	Expanded
	Collapsing
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Expanding:
		return "expanding"
	case Expanded:
		return "expanded"
	case Collapsing:
		return "collapsing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Timing configures the transition.
type Timing struct {
	Expand     time.Duration // slot to detail
	Exit       time.Duration // slide-up fade out
	CloseDelay time.Duration // extra time the detail stays mounted after the fade
	ExitLift   float64       // exit slide, as a fraction of the overlay height
	Easing     Easing
}

// Geometry is captured when a transition starts.
type Geometry struct {
	Source Rect
	Target Rect
}

// Controller is the transition state machine. It is driven by Advance from
// the frame loop and never blocks.
type Controller struct {
	timing   Timing
	registry *Registry
	log      *zap.Logger

	state    State
	selected string
	geometry Geometry
	captured bool
	elapsed  time.Duration

	from    Rect
	overlay Rect
	opacity float64

	exitFrom    Rect
	exitOpacity float64
}

// NewController creates a controller reading geometry from registry.
func NewController(registry *Registry, timing Timing, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if timing.Easing == nil {
		timing.Easing = EaseInOutCubic
	}
	return &Controller{timing: timing, registry: registry, log: log}
}

// Select starts expanding id. Selecting the open item again closes it;
// selecting another item while expanding or expanded recaptures geometry
// and animates from the current overlay pose.
func (c *Controller) Select(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	switch c.state {
	case Collapsing:
		return ErrTransitionBusy
	case Expanding, Expanded:
		if id == c.selected {
			c.Close()
			return nil
		}
	}

	from := c.overlay
	retarget := c.state != Idle

	target, hasTarget := c.registry.Target()
	source, hasSource := c.registry.Lookup(id)

	c.selected = id
	c.geometry = Geometry{Source: source, Target: target}
	c.captured = true
	c.elapsed = 0
	c.opacity = 1

	if !hasSource || !hasTarget {
		c.log.Warn("missing geometry, snapping to detail",
			zap.String("id", id),
			zap.Bool("source", hasSource),
			zap.Bool("target", hasTarget),
			zap.Int("measured", c.registry.Len()))
		c.state = Expanded
		c.overlay = target
		return nil
	}

	if !retarget {
		from = source
	}
	c.from = from
	c.overlay = from
	c.state = Expanding
	c.log.Debug("expanding", zap.String("id", id), zap.Bool("retarget", retarget))
	if c.timing.Expand <= 0 {
		c.finishExpand()
	}
	return nil
}

// Close starts the dismissal from Expanding or Expanded. It reports whether
// a dismissal started.
func (c *Controller) Close() bool {
	if c.state != Expanding && c.state != Expanded {
		return false
	}
	c.state = Collapsing
	c.elapsed = 0
	c.exitFrom = c.overlay
	c.exitOpacity = c.opacity
	c.log.Debug("collapsing", zap.String("id", c.selected))
	if c.timing.Exit+c.timing.CloseDelay <= 0 {
		c.finishCollapse()
	}
	return true
}

// Escape closes the detail from any state except Idle.
func (c *Controller) Escape() bool {
	if c.state == Idle {
		return false
	}
	return c.Close()
}

// Advance moves the running animation forward by dt.
func (c *Controller) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	switch c.state {
	case Expanding:
		c.elapsed += dt
		t := float64(c.elapsed) / float64(c.timing.Expand)
		if t >= 1 {
			c.finishExpand()
			return
		}
		c.overlay = c.from.Lerp(c.geometry.Target, c.timing.Easing(t))

	case Collapsing:
		c.elapsed += dt
		if c.elapsed >= c.timing.Exit+c.timing.CloseDelay {
			c.finishCollapse()
			return
		}
		t := 1.0
		if c.timing.Exit > 0 {
			t = clampUnit(float64(c.elapsed) / float64(c.timing.Exit))
		}
		e := c.timing.Easing(t)
		c.overlay = c.exitFrom.Offset(0, -c.timing.ExitLift*c.exitFrom.Height*e)
		c.opacity = c.exitOpacity * (1 - e)
	}
}

func (c *Controller) finishExpand() {
	c.state = Expanded
	c.overlay = c.geometry.Target
	c.opacity = 1
	c.log.Debug("expanded", zap.String("id", c.selected))
}

func (c *Controller) finishCollapse() {
	c.log.Debug("closed", zap.String("id", c.selected))
	c.state = Idle
	c.selected = ""
	c.geometry = Geometry{}
	c.captured = false
	c.elapsed = 0
	c.overlay = Rect{}
	c.opacity = 0
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Animating reports whether Advance still has work to do.
func (c *Controller) Animating() bool {
	return c.state == Expanding || c.state == Collapsing
}

// Selected returns the selected id. It stays set until the state is Idle.
func (c *Controller) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

// Geometry returns the rectangles captured for the current transition.
func (c *Controller) Geometry() (Geometry, bool) {
	return c.geometry, c.captured
}

// Overlay returns the overlay pose and opacity to paint this frame.
func (c *Controller) Overlay() (Rect, float64) {
	return c.overlay, c.opacity
}

// DismissBudget is the longest a dismissal can take.
func (c *Controller) DismissBudget() time.Duration {
	return c.timing.Exit + c.timing.CloseDelay
}
