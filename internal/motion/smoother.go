// Package motion turns raw drag offsets into a smoothed carousel position.
package motion

import "math"

const settleEpsilon = 0.01

// DragState is a snapshot of the carousel position.
type DragState struct {
	Raw      float64
	Smoothed float64
	Velocity float64 // units per second, signed
	Min      float64 // -maxScroll
	Max      float64 // always 0
}

// Smoother runs the drag spring. Raw offsets are clamped to
// [-maxScroll, 0]; the smoothed offset chases the raw one and never leaves
// that range.
type Smoother struct {
	spring    Spring
	fps       int
	raw       float64
	prev      float64
	velocity  float64
	maxScroll float64
	dragging  bool
}

// NewSmoother creates a smoother stepping at fps frames per second.
func NewSmoother(fps int, p SpringParams) *Smoother {
	if fps <= 0 {
		fps = 60
	}
	return &Smoother{spring: NewSpring(fps, p), fps: fps}
}

// SetBounds recomputes the scrollable range from content and viewport sizes
// and pulls both offsets back inside it.
func (s *Smoother) SetBounds(content, viewport float64) {
	s.maxScroll = MaxScroll(content, viewport)
	s.raw = s.clamp(s.raw)
	if p := s.spring.Position(); p != s.clamp(p) {
		s.spring.Jump(s.clamp(p))
		s.prev = s.spring.Position()
	}
}

// MaxScroll returns content-viewport, never below zero.
func MaxScroll(content, viewport float64) float64 {
	m := content - viewport
	if m < 0 || math.IsNaN(m) {
		return 0
	}
	return m
}

// Grab marks the start of a drag.
func (s *Smoother) Grab() { s.dragging = true }

// Release ends a drag. The spring keeps settling on the last raw offset.
func (s *Smoother) Release() { s.dragging = false }

// Dragging reports whether a drag is in progress.
func (s *Smoother) Dragging() bool { return s.dragging }

// SetRaw sets the raw offset, clamped to the bounds.
func (s *Smoother) SetRaw(x float64) {
	if math.IsNaN(x) {
		return
	}
	s.raw = s.clamp(x)
}

// Nudge moves the raw offset by dx.
func (s *Smoother) Nudge(dx float64) { s.SetRaw(s.raw + dx) }

// Step advances the spring one frame and derives velocity from the change
// of the smoothed offset since the previous frame.
func (s *Smoother) Step() {
	s.prev = s.spring.Position()
	next := s.spring.Step(s.raw)
	if c := s.clamp(next); c != next {
		s.spring.Jump(c)
		next = c
	}
	if s.nearRaw(next) {
		s.spring.Jump(s.raw)
		next = s.raw
	}
	s.velocity = (next - s.prev) * float64(s.fps)
}

func (s *Smoother) nearRaw(pos float64) bool {
	return math.Abs(s.raw-pos) < settleEpsilon && math.Abs(pos-s.prev)*float64(s.fps) < settleEpsilon
}

// Settled reports whether the smoothed offset has reached the raw offset
// and stopped moving.
func (s *Smoother) Settled() bool {
	return !s.dragging && s.spring.Position() == s.raw && s.velocity == 0
}

// State returns the current drag state.
func (s *Smoother) State() DragState {
	return DragState{
		Raw:      s.raw,
		Smoothed: s.spring.Position(),
		Velocity: s.velocity,
		Min:      -s.maxScroll,
		Max:      0,
	}
}

// Raw returns the clamped raw offset.
func (s *Smoother) Raw() float64 { return s.raw }

// Offset returns the smoothed offset.
func (s *Smoother) Offset() float64 { return s.spring.Position() }

// Velocity returns the smoothed offset's rate of change in units per second.
func (s *Smoother) Velocity() float64 { return s.velocity }

// MaxScroll returns the current scrollable range.
func (s *Smoother) MaxScroll() float64 { return s.maxScroll }

// Bound clamps x to the current range without changing any state.
func (s *Smoother) Bound(x float64) float64 { return s.clamp(x) }

func (s *Smoother) clamp(x float64) float64 {
	if x > 0 {
		return 0
	}
	if x < -s.maxScroll {
		return -s.maxScroll
	}
	return x
}
