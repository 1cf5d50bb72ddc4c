package must3

import (
	"math"

	"github.com/soypat/surfgen"
	"gonum.org/v1/gonum/spatial/r3"
)

// CylinderWall returns the open cylinder mantle of the given radius
// around the Z axis between heights z0 and z1, sampled at phiSteps.
// It faces outward for a positive radius and z0 < z1.
func CylinderWall(radius float64, phiSteps []float64, z0, z1 float64) surfgen.Generator {
	mustFiniteScalar(radius, "radius")
	return surfgen.QuadrangulateVertices(phiSteps, []float64{z0, z1}, func(phi, z float64) surfgen.Vertex {
		sin, cos := math.Sincos(phi)
		return surfgen.Vertex{
			Pos:    surfgen.FromCylindric(radius, phi, z),
			Normal: r3.Vec{X: cos, Y: sin},
		}
	}, false)
}

// Disk returns a flat triangle fan of the given radius at height z
// facing +Z, with rim points at phiSteps.
func Disk(radius, z float64, phiSteps []float64) surfgen.Generator {
	mustFiniteScalar(radius, "radius")
	mustFiniteScalar(z, "z")
	up := r3.Vec{Z: 1}
	return func(b surfgen.Builder) {
		center := b.AddVertex(surfgen.Vertex{Pos: r3.Vec{Z: z}, Normal: up})
		prev := -1
		for _, phi := range phiSteps {
			v := b.AddVertex(surfgen.Vertex{Pos: surfgen.FromCylindric(radius, phi, z), Normal: up})
			if prev >= 0 {
				b.AddTriangle(center, prev, v, false)
			}
			prev = v
		}
	}
}
