package vmath

import (
	"math"
)

// Vec2 is a float64 vector on the board plane
// X runs along grid columns, Z along grid rows
type Vec2 struct {
	X, Z float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Z + b.Z}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Z - b.Z}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Z*v.Z
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2DistSq returns squared distance between a and b
func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

// V2CapMag limits v to maxMag, returns the (possibly scaled) vector and whether it was clamped
func V2CapMag(v Vec2, maxMag float64) (Vec2, bool) {
	magSq := V2MagSq(v)
	if magSq <= maxMag*maxMag {
		return v, false
	}
	mag := math.Sqrt(magSq)
	if mag == 0 {
		return v, false
	}
	return V2Scale(v, maxMag/mag), true
}
