package form3

import (
	"github.com/soypat/surfgen"
	"github.com/soypat/surfgen/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box returns a Generator for a plain axis aligned box.
func Box(min, max r3.Vec) (g surfgen.Generator, err error) {
	defer recoverShape(&err)
	return must3.Box(min, max), err
}

// RoundedBox returns a Generator for an axis aligned box with edges and
// corners rounded by the per-axis radii, subdivided n times. Radii are
// not checked against the box size, see ClampRadii.
func RoundedBox(min, max, radii r3.Vec, n int) (g surfgen.Generator, err error) {
	defer recoverShape(&err)
	return must3.RoundedBox(min, max, radii, n), err
}

// Dome returns a Generator for the unit upper hemisphere subdivided n
// times per quadrant.
func Dome(n int, sines bool) (g surfgen.Generator, err error) {
	defer recoverShape(&err)
	if n < 1 {
		panic("subdivisions < 1")
	}
	return must3.Dome(must3.DomeSteps(n, sines)), err
}

// CylinderWall returns a Generator for an open cylinder around Z.
func CylinderWall(radius float64, phiSteps []float64, z0, z1 float64) (g surfgen.Generator, err error) {
	defer recoverShape(&err)
	return must3.CylinderWall(radius, phiSteps, z0, z1), err
}

// Disk returns a Generator for a flat disk facing +Z at height z.
func Disk(radius, z float64, phiSteps []float64) (g surfgen.Generator, err error) {
	defer recoverShape(&err)
	return must3.Disk(radius, z, phiSteps), err
}
