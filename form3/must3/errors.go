package must3

import (
	"math"

	"github.com/soypat/surfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func mustFinite(v r3.Vec, name string) {
	if !d3.IsFinite(v) {
		panic(name + " not finite")
	}
}

func mustFiniteScalar(f float64, name string) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(name + " not finite")
	}
}

// compose builds a vector from its components along axis a and the two
// axes following it cyclically.
func compose(a int, va, vb, vc float64) r3.Vec {
	var c [3]float64
	c[a] = va
	c[(a+1)%3] = vb
	c[(a+2)%3] = vc
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}

// pick returns the component of hi if sign is positive, else that of lo.
func pick(sign float64, lo, hi r3.Vec, axis int) float64 {
	if sign > 0 {
		return d3.Component(hi, axis)
	}
	return d3.Component(lo, axis)
}
