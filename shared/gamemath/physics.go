// Package gamemath holds the small numeric policies shared by the client and
// the dev backend. No ebiten imports.
package gamemath

import "math"

// RoundCoord rounds half up, the way positions are sent to the backend:
// 10.5 -> 11, -2.5 -> -2.
func RoundCoord(v float64) int {
	return int(math.Floor(v + 0.5))
}

// DisplayCoord drops the fraction for on-screen text: 10.7 -> 10,
// -3.2 -> -3.
func DisplayCoord(v float64) int {
	return int(math.Trunc(v))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Step returns the displacement for one tick of dt seconds at speed units/s.
func Step(speed, dt float64) float64 {
	return speed * dt
}
