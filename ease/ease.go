// Package ease provides progress-shaping curves for entrance animations.
// A Curve maps normalized time t in [0,1] to animation progress; the delay
// engine passes curves through untouched, the view layer applies them.
package ease

import "math"

// Curve maps normalized time to normalized progress
// Implementations must return 0 at t=0 and 1 at t=1
type Curve func(t float64) float64

// clamp limits t to [0,1] so callers can feed raw elapsed/duration ratios
func clamp(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t
}

// Linear is identity progress
func Linear(t float64) float64 {
	return clamp(t)
}

// InQuad accelerates from zero
func InQuad(t float64) float64 {
	t = clamp(t)
	return t * t
}

// OutQuad decelerates to one
func OutQuad(t float64) float64 {
	t = clamp(t)
	return t * (2 - t)
}

// InOutQuad accelerates then decelerates
func InOutQuad(t float64) float64 {
	t = clamp(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// OutCubic decelerates to one, steeper than OutQuad
func OutCubic(t float64) float64 {
	t = clamp(t) - 1
	return t*t*t + 1
}

// OutExpo decelerates exponentially
func OutExpo(t float64) float64 {
	t = clamp(t)
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// OutBack overshoots slightly before settling at one
func OutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = clamp(t) - 1
	return 1 + c3*t*t*t + c1*t*t
}
