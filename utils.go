package surfgen

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// Tau is a full turn in radians.
	Tau = tau
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Mix does a linear interpolation from x to y, a = [0,1]
func Mix(x, y, a float64) float64 {
	return x + (a * (y - x))
}

// Normalize returns v scaled to unit length. Vectors that cannot be
// normalized (zero length, NaN or infinite) return the +Z unit vector
// so that callers building normals near singular points always get
// a defined direction.
func Normalize(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return r3.Vec{Z: 1}
	}
	return r3.Scale(1/n, v)
}

// FromCylindric converts cylindrical coordinates to cartesian.
func FromCylindric(radial, phi, axial float64) r3.Vec {
	s, c := math.Sincos(phi)
	return r3.Vec{X: radial * c, Y: radial * s, Z: axial}
}
