// Package showcase owns the interactive project carousel: the drag state,
// the displayed order and the current selection. Everything else reads the
// signals it exposes.
//
// A Showcase is driven from a single Update loop. Input handlers only record
// intent; Tick applies it once per frame in a fixed order: offset, spring,
// velocity, progress, candles, transition.
package showcase

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/olivier-w/folio/internal/candle"
	"github.com/olivier-w/folio/internal/catalog"
	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/morph"
	"github.com/olivier-w/folio/internal/motion"
	"go.uber.org/zap"
)

// ErrUnknownItem is returned when selecting an id the catalog lacks.
var ErrUnknownItem = errors.New("unknown item")

const (
	maxFrameStep    = 100 * time.Millisecond
	signalEpsilon   = 1e-3
	defaultDebounce = 150 * time.Millisecond
)

// Showcase is the interactive carousel core.
type Showcase struct {
	catalog  *catalog.Catalog
	order    []catalog.Item
	sortedBy catalog.Criterion

	smoother *motion.Smoother
	candles  *candle.Controller
	registry *morph.Registry
	morph    *morph.Controller

	offset frame.Latest[float64]
	resize *frame.Debouncer[float64]

	fps        int
	hideSortAt float64
	progress   float64
	lastTick   time.Time
	rng        *rand.Rand
	log        *zap.Logger
}

// New creates a showcase over cat.
func New(cat *catalog.Catalog, opts Options) *Showcase {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	debounce := opts.ResizeDebounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	registry := morph.NewRegistry()
	s := &Showcase{
		catalog:    cat,
		order:      cat.Items(),
		sortedBy:   -1,
		smoother:   motion.NewSmoother(fps, opts.Spring),
		candles:    candle.New(cat.Len(), fps, opts.Spring, opts.Candle),
		registry:   registry,
		morph:      morph.NewController(registry, opts.Timing, log.Named("morph")),
		resize:     frame.NewDebouncer[float64](debounce),
		fps:        fps,
		hideSortAt: opts.HideSortAt,
		rng:        rng,
		log:        log,
	}

	if opts.InitialSort != "" {
		if err := s.RequestSortName(opts.InitialSort); err != nil {
			log.Warn("initial sort ignored", zap.Error(err))
		}
	}
	s.candles.Update(0, 0)
	return s
}

// Registry is where the rendering layer records slot geometry.
func (s *Showcase) Registry() *morph.Registry { return s.registry }

// SetBounds applies content and viewport sizes immediately.
func (s *Showcase) SetBounds(content, viewport float64) {
	s.smoother.SetBounds(content, viewport)
	s.progress = motion.Progress(s.smoother.Offset(), s.smoother.MaxScroll())
	s.log.Debug("bounds", zap.Float64("content", content), zap.Float64("viewport", viewport),
		zap.Float64("max_scroll", s.smoother.MaxScroll()))
}

// Resize records a new viewport size and returns the sequence number the
// caller's debounce timer must hand back to ResizeSettled.
func (s *Showcase) Resize(viewport float64, now time.Time) uint64 {
	return s.resize.Push(viewport, now)
}

// ResizeSettled applies the debounced viewport if seq is still the newest
// resize. content is measured by the caller when the timer fires, so
// changes made during the quiet period are not overwritten. It reports
// whether bounds changed.
func (s *Showcase) ResizeSettled(seq uint64, now time.Time, content float64) bool {
	viewport, ok := s.resize.Fire(seq, now)
	if !ok {
		return false
	}
	s.SetBounds(content, viewport)
	return true
}

// DragStart begins a pointer drag.
func (s *Showcase) DragStart() {
	if !s.Interactive() {
		return
	}
	s.smoother.Grab()
}

// DragMove moves the raw offset by dx. Moves within one frame coalesce.
func (s *Showcase) DragMove(dx float64) {
	if !s.smoother.Dragging() {
		return
	}
	s.moveBy(dx)
}

// DragEnd releases the drag; the carousel settles on the last offset.
func (s *Showcase) DragEnd() {
	s.smoother.Release()
}

// Nudge scrolls by dx without a drag, e.g. from arrow keys or the wheel.
func (s *Showcase) Nudge(dx float64) {
	if !s.Interactive() {
		return
	}
	s.moveBy(dx)
}

func (s *Showcase) moveBy(dx float64) {
	if math.IsNaN(dx) || math.IsInf(dx, 0) {
		return
	}
	base, ok := s.offset.Take()
	if !ok {
		base = s.smoother.Raw()
	}
	s.offset.Set(s.smoother.Bound(base + dx))
}

// RequestJump scrolls so that candle i's share of the range reaches the
// viewport edge.
func (s *Showcase) RequestJump(i int) {
	if i < 0 || i >= s.catalog.Len() || !s.Interactive() {
		return
	}
	p := candle.IndexPercent(i, s.catalog.Len())
	s.offset.Set(motion.JumpOffset(p, s.smoother.MaxScroll()))
}

// Tick advances everything by one frame.
func (s *Showcase) Tick(now time.Time) {
	dt := time.Second / time.Duration(s.fps)
	if !s.lastTick.IsZero() {
		if d := now.Sub(s.lastTick); d > 0 {
			dt = min(d, maxFrameStep)
		}
	}
	s.lastTick = now

	if raw, ok := s.offset.Take(); ok {
		s.smoother.SetRaw(raw)
	}
	s.smoother.Step()
	s.progress = motion.Progress(s.smoother.Offset(), s.smoother.MaxScroll())
	s.candles.Update(s.progress, s.smoother.Velocity())
	s.morph.Advance(dt)
}

// Pause forgets the last tick time so the next frame after an idle period
// does not see a huge step.
func (s *Showcase) Pause() {
	s.lastTick = time.Time{}
}

// Animating reports whether another Tick would change anything.
func (s *Showcase) Animating() bool {
	return s.offset.Pending() ||
		!s.smoother.Settled() ||
		s.morph.Animating() ||
		s.candles.Signal() > signalEpsilon
}

// RequestSort reorders the carousel.
func (s *Showcase) RequestSort(c catalog.Criterion) error {
	order, err := catalog.Sort(s.catalog.Items(), c, s.rng)
	if err != nil {
		s.log.Debug("sort ignored", zap.Error(err))
		return err
	}
	s.order = order
	s.sortedBy = c
	s.log.Debug("sorted", zap.Stringer("criterion", c))
	return nil
}

// RequestSortName reorders the carousel by a sort key. Unknown keys leave
// the order unchanged.
func (s *Showcase) RequestSortName(name string) error {
	c, err := catalog.ParseCriterion(name)
	if err != nil {
		s.log.Debug("sort ignored", zap.Error(err))
		return err
	}
	return s.RequestSort(c)
}

// RequestSelect opens the detail view for id.
func (s *Showcase) RequestSelect(id string) error {
	if !s.catalog.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if err := s.morph.Select(id); err != nil {
		s.log.Debug("select ignored", zap.String("id", id), zap.Error(err))
		return err
	}
	s.smoother.Release()
	return nil
}

// RequestClose dismisses the detail view.
func (s *Showcase) RequestClose() bool { return s.morph.Close() }

// Escape closes the detail view from any non-idle state.
func (s *Showcase) Escape() bool { return s.morph.Escape() }

// Offset returns the smoothed offset.
func (s *Showcase) Offset() float64 { return s.smoother.Offset() }

// Drag returns the full drag state.
func (s *Showcase) Drag() motion.DragState { return s.smoother.State() }

// Progress returns the scroll position in [0,1].
func (s *Showcase) Progress() float64 { return s.progress }

// Velocity returns the smoothed offset's velocity in units per second.
func (s *Showcase) Velocity() float64 { return s.smoother.Velocity() }

// Pan returns the hero image pan in percent.
func (s *Showcase) Pan() float64 { return motion.Pan(s.progress) }

// SortPanelHidden reports whether the carousel has been dragged far enough
// to slide the sort controls away.
func (s *Showcase) SortPanelHidden() bool {
	return s.smoother.Raw() < s.hideSortAt
}

// Order returns the displayed order.
func (s *Showcase) Order() []catalog.Item {
	out := make([]catalog.Item, len(s.order))
	copy(out, s.order)
	return out
}

// SortedBy returns the last applied criterion, false before any sort.
func (s *Showcase) SortedBy() (catalog.Criterion, bool) {
	return s.sortedBy, s.sortedBy.Valid()
}

// Catalog returns the catalog in load order.
func (s *Showcase) Catalog() *catalog.Catalog { return s.catalog }

// Selection returns the selected item. It stays set until the transition
// is back to idle.
func (s *Showcase) Selection() (catalog.Item, bool) {
	id, ok := s.morph.Selected()
	if !ok {
		return catalog.Item{}, false
	}
	return s.catalog.Item(id)
}

// State returns the transition state.
func (s *Showcase) State() morph.State { return s.morph.State() }

// Overlay returns the overlay rectangle and opacity.
func (s *Showcase) Overlay() (morph.Rect, float64) { return s.morph.Overlay() }

// Geometry returns the geometry captured for the running transition.
func (s *Showcase) Geometry() (morph.Geometry, bool) { return s.morph.Geometry() }

// Candles returns the indicator paint state in catalog load order.
func (s *Showcase) Candles() []candle.Candle { return s.candles.Candles() }

// Interactive reports whether the carousel accepts pointer input, which is
// only while no detail is shown.
func (s *Showcase) Interactive() bool { return s.morph.State() == morph.Idle }
