package animate

import "time"

// fraction returns how far elapsed is through d, clamped to [0, 1].
func fraction(elapsed, d time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if d <= 0 || elapsed >= d {
		return 1
	}
	return float64(elapsed) / float64(d)
}

// easeInOut is a symmetric cubic ease.
func easeInOut(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	f := -2*x + 2
	return 1 - f*f*f/2
}
