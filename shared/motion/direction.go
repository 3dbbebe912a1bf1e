// Package motion turns held movement keys into a velocity. It has no
// dependency on ebiten so the input rules can be exercised headless.
package motion

import "math"

// Direction is one of the four movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Opposite returns the direction on the same axis pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Unit returns the unit vector for d. Up is +Y, matching world coordinates
// where the backend stores y growing upwards.
func (d Direction) Unit() Vector {
	switch d {
	case DirUp:
		return Vector{Y: 1}
	case DirDown:
		return Vector{Y: -1}
	case DirLeft:
		return Vector{X: -1}
	case DirRight:
		return Vector{X: 1}
	}
	return Vector{}
}

// Vector is a 2D velocity or offset.
type Vector struct {
	X, Y float64
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// DirectionOf maps a vector to the dominant direction. Ties on both axes
// prefer the horizontal axis so diagonal walking faces sideways.
func DirectionOf(v Vector) Direction {
	if v.IsZero() {
		return DirNone
	}
	if math.Abs(v.X) >= math.Abs(v.Y) {
		if v.X > 0 {
			return DirRight
		}
		return DirLeft
	}
	if v.Y > 0 {
		return DirUp
	}
	return DirDown
}
