package gamemath

import "math"

// EaseOutCirc is the quarter-circle ease-out sqrt(1 - (t-1)^2).
// t is clamped to [0, 1].
func EaseOutCirc(t float64) float64 {
	d := Clamp01(t) - 1
	return math.Sqrt(1 - d*d)
}

// EaseOutCircRemaining returns 1 - EaseOutCirc(t), written as
// d^2 / (1 + sqrt(1 - d^2)) so it keeps full precision as t approaches 1.
func EaseOutCircRemaining(t float64) float64 {
	d := Clamp01(t) - 1
	d2 := d * d
	return d2 / (1 + math.Sqrt(1-d2))
}

// AnimatedScale maps animation progress to a camera scale: 1 at t=0,
// falling to minScale at t=1. The result is never below minScale.
func AnimatedScale(t, minScale float64) float64 {
	return math.Max(EaseOutCircRemaining(t), minScale)
}

// DirectScale maps an overlay zoom factor to a camera scale.
// zoomFactor must already be clamped to a positive range.
func DirectScale(zoomFactor float64) float64 {
	return 1 / zoomFactor
}

// Progress returns elapsed/duration clamped to [0, 1].
// A non-positive duration counts as complete.
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(elapsed / duration)
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
