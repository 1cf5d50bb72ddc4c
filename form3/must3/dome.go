package must3

import (
	"math"

	"github.com/soypat/surfgen"
	"gonum.org/v1/gonum/spatial/r3"
)

// Dome returns the upper unit hemisphere built from four reflected copies
// of a triangulated sphere octant. steps maps lattice coordinates to the
// octant: lattice point (i,j,k) is projected from (±steps[i], ±steps[j], steps[k])
// onto the sphere. steps should rise from 0 to 1, see DomeSteps.
//
// The quadrants are generated independently so vertices on the X=0 and
// Y=0 seams are duplicated. They receive identical positions and normals.
func Dome(steps []float64) surfgen.Generator {
	n := len(steps) - 1
	quadrants := make([]surfgen.Generator, 0, 4)
	for _, sx := range signs {
		for _, sy := range signs {
			quadrants = append(quadrants, domeQuadrant(steps, n, sx, sy))
		}
	}
	return surfgen.Combine(quadrants...)
}

func domeQuadrant(steps []float64, n int, sx, sy float64) surfgen.Generator {
	// Mirrored copies need their winding flipped to keep facing outward.
	invert := sx*sy < 0
	return func(b surfgen.Builder) {
		surfgen.Triangulate(n, func(i, j, k int) int {
			v := surfgen.Normalize(r3.Vec{X: sx * steps[i], Y: sy * steps[j], Z: steps[k]})
			return b.AddVertex(surfgen.Vertex{Pos: v, Normal: v})
		}, func(p, q, r int) {
			b.AddTriangle(p, q, r, invert)
		})
	}
}

// DomeSteps returns the n+1 lattice coordinates for Dome. With sines
// set the coordinates follow sin(τ/4·t) which spreads the triangles
// more evenly over the sphere than the linear spacing.
func DomeSteps(n int, sines bool) []float64 {
	steps := surfgen.Subdivide(0, 1, n)
	if sines {
		for i, t := range steps {
			steps[i] = math.Sin(surfgen.Tau / 4 * t)
		}
	}
	return steps
}
