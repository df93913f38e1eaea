package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// ClampColour clamps every channel of c to [0, 1].
func ClampColour(c Colour) Colour {
	return Colour{
		X: Clamp(c.X, 0, 1),
		Y: Clamp(c.Y, 0, 1),
		Z: Clamp(c.Z, 0, 1),
		W: Clamp(c.W, 0, 1),
	}
}
