package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSym restricts v to [-limit, limit]
func ClampSym(v, limit float64) float64 {
	return Clamp(v, -limit, limit)
}

// RoundHalfUp rounds to nearest integer with .5 going toward +Inf
// Grid lookups depend on this tie rule, math.Round sends -0.5 to -1
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Signum returns -1, 0 or 1
func Signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
