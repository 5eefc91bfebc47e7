package morph

import "math"

// Rect is an on-screen rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether r has no visible area.
func (r Rect) Empty() bool {
	return !(r.Width > 0 && r.Height > 0) || math.IsNaN(r.X) || math.IsNaN(r.Y)
}

// Lerp interpolates between r and to by t.
func (r Rect) Lerp(to Rect, t float64) Rect {
	return Rect{
		X:      lerp(r.X, to.X, t),
		Y:      lerp(r.Y, to.Y, t),
		Width:  lerp(r.Width, to.Width, t),
		Height: lerp(r.Height, to.Height, t),
	}
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Registry maps item ids to their last measured rectangle. The layout pass
// re-measures it before a transition can read it; ids that are not mounted
// are simply absent.
type Registry struct {
	rects     map[string]Rect
	target    Rect
	hasTarget bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rects: make(map[string]Rect)}
}

// Measure records the rectangle of id.
func (r *Registry) Measure(id string, rect Rect) {
	r.rects[id] = rect
}

// Forget removes id, e.g. when its slot scrolled out of view.
func (r *Registry) Forget(id string) {
	delete(r.rects, id)
}

// SetTarget records the detail placeholder rectangle.
func (r *Registry) SetTarget(rect Rect) {
	r.target = rect
	r.hasTarget = true
}

// Lookup returns the rectangle of id. Missing or zero-sized slots report false.
func (r *Registry) Lookup(id string) (Rect, bool) {
	rect, ok := r.rects[id]
	if !ok || rect.Empty() {
		return Rect{}, false
	}
	return rect, true
}

// Target returns the detail placeholder rectangle.
func (r *Registry) Target() (Rect, bool) {
	if !r.hasTarget || r.target.Empty() {
		return Rect{}, false
	}
	return r.target, true
}

// Len returns the number of measured slots.
func (r *Registry) Len() int { return len(r.rects) }
