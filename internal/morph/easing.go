package morph

import "strings"

// Easing maps linear progress in [0,1] onto an eased curve.
type Easing func(t float64) float64

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Linear is the identity curve.
func Linear(t float64) float64 { return clampUnit(t) }

// EaseOutCubic decelerates to the end.
func EaseOutCubic(t float64) float64 {
	t = clampUnit(t)
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(t float64) float64 {
	t = clampUnit(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Smoothstep is the Hermite curve 3t²-2t³.
func Smoothstep(t float64) float64 {
	t = clampUnit(t)
	return t * t * (3 - 2*t)
}

// EasingByName returns a curve by name, defaulting to EaseInOutCubic.
func EasingByName(name string) Easing {
	switch strings.ToLower(name) {
	case "linear":
		return Linear
	case "ease-out":
		return EaseOutCubic
	case "smoothstep":
		return Smoothstep
	default:
		return EaseInOutCubic
	}
}
