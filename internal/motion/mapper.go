package motion

import "math"

// Progress maps a smoothed offset onto [0,1] across the scrollable range.
// A degenerate range (maxScroll <= 0) always maps to 0.
func Progress(offset, maxScroll float64) float64 {
	if maxScroll <= 0 || math.IsNaN(maxScroll) || math.IsInf(maxScroll, 0) || math.IsNaN(offset) {
		return 0
	}
	return Clamp01(offset / -maxScroll)
}

// Pan returns the hero image pan position, in percent, for progress p.
func Pan(p float64) float64 {
	return 30 + 40*Clamp01(p)
}

// JumpOffset returns the raw offset that brings fraction p of the range to
// the viewport edge.
func JumpOffset(p, maxScroll float64) float64 {
	if maxScroll <= 0 {
		return 0
	}
	return -Clamp01(p) * maxScroll
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
