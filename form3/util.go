package form3

import (
	"math"

	"github.com/soypat/surfgen"
	"github.com/soypat/surfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ClampRadii clamps each radius to [0, half the box extent] on its axis
// so that the result is a valid RoundedBox argument. Callers animating
// radii should clamp before every regeneration.
func ClampRadii(min, max, radii r3.Vec) r3.Vec {
	half := r3.Scale(0.5, d3.Box{Min: min, Max: max}.Canon().Size())
	return r3.Vec{
		X: surfgen.Clamp(radii.X, 0, half.X),
		Y: surfgen.Clamp(radii.Y, 0, half.Y),
		Z: surfgen.Clamp(radii.Z, 0, half.Z),
	}
}

// UniformRadii returns a radius vector with all components set to r.
func UniformRadii(r float64) r3.Vec {
	return d3.Elem(math.Max(r, 0))
}
