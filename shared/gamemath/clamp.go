package gamemath

import "math"

// Clamp limits v to [lo, hi]. NaN becomes lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampAxis clamps a normalised pointer axis to [-1, 1]. NaN becomes 0.
func ClampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, -1, 1)
}

// SanitizeElapsed turns malformed timing input into 0 so that NaN, infinities
// and negative deltas never reach accumulators.
func SanitizeElapsed(ms float64) float64 {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		return 0
	}
	return ms
}

// NormalizeCursor maps a pixel coordinate inside [0, size] linearly onto
// [-1, 1]. A non-positive size yields 0.
func NormalizeCursor(px, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return ClampAxis(px/size*2 - 1)
}
