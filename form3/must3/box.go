package must3

import (
	"math"

	"github.com/soypat/surfgen"
	"github.com/soypat/surfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

var signs = [2]float64{-1, 1}

// Box returns a Generator for the six faces of the axis aligned
// box with opposite corners min and max. Faces point outward.
func Box(min, max r3.Vec) surfgen.Generator {
	mustFinite(min, "min")
	mustFinite(max, "max")
	min, max = canon(min, max)
	return surfgen.Combine(boxFaces(min, max, min, max)...)
}

// RoundedBox returns a Generator for the axis aligned box with opposite
// corners min and max whose edges and corners are rounded with the per-axis
// radii. Corner and edge patches are subdivided n times.
//
// Radii larger than half the box extent on their axis produce
// self-intersecting output and are not checked; a zero radius vector
// gives the plain Box plus zero area patches.
func RoundedBox(min, max, radii r3.Vec, n int) surfgen.Generator {
	mustFinite(min, "min")
	mustFinite(max, "max")
	mustFinite(radii, "radii")
	if n < 1 {
		panic("subdivisions < 1")
	}
	min, max = canon(min, max)
	// Inner box holding edge axes and corner centers.
	lo := r3.Add(min, radii)
	hi := r3.Sub(max, radii)
	angles := surfgen.Subdivide(0, math.Pi/2, n)

	gens := boxFaces(min, max, lo, hi)
	for a := 0; a < 3; a++ {
		for _, sb := range signs {
			for _, sc := range signs {
				gens = append(gens, roundedEdge(a, sb, sc, lo, hi, radii, angles))
			}
		}
	}
	for _, sx := range signs {
		for _, sy := range signs {
			for _, sz := range signs {
				gens = append(gens, roundedCorner(r3.Vec{X: sx, Y: sy, Z: sz}, lo, hi, radii, angles))
			}
		}
	}
	return surfgen.Combine(gens...)
}

// canon returns the corners a and b ordered per axis.
func canon(a, b r3.Vec) (min, max r3.Vec) {
	bb := d3.Box{Min: a, Max: b}.Canon()
	return bb.Min, bb.Max
}

// boxFaces returns the six planar faces lying on the planes of the
// outer box min,max and spanning the inner rectangle lo,hi.
func boxFaces(min, max, lo, hi r3.Vec) []surfgen.Generator {
	gens := make([]surfgen.Generator, 0, 6)
	for a := 0; a < 3; a++ {
		axis := a
		b, c := (a+1)%3, (a+2)%3
		us := []float64{d3.Component(lo, b), d3.Component(hi, b)}
		vs := []float64{d3.Component(lo, c), d3.Component(hi, c)}
		for _, s := range signs {
			level := pick(s, min, max, a)
			normal := d3.Axis(a, s)
			gens = append(gens, surfgen.QuadrangulateVertices(us, vs, func(u, v float64) surfgen.Vertex {
				return surfgen.Vertex{Pos: compose(axis, level, u, v), Normal: normal}
			}, s < 0))
		}
	}
	return gens
}

// roundedEdge returns the quarter cylinder running along axis a at the
// inner box edge selected by the signs sb, sc of the two following axes.
func roundedEdge(a int, sb, sc float64, lo, hi, radii r3.Vec, angles []float64) surfgen.Generator {
	b, c := (a+1)%3, (a+2)%3
	cb, cc := pick(sb, lo, hi, b), pick(sc, lo, hi, c)
	rb, rc := d3.Component(radii, b), d3.Component(radii, c)
	ts := []float64{d3.Component(lo, a), d3.Component(hi, a)}
	return surfgen.QuadrangulateVertices(angles, ts, func(theta, t float64) surfgen.Vertex {
		sin, cos := math.Sincos(theta)
		dir := compose(a, 0, sb*cos, sc*sin)
		normal := compose(a, 0, sb*cos*rc, sc*sin*rb)
		if normal == (r3.Vec{}) {
			// A zero radius flattens the edge onto a face plane.
			switch {
			case rb == 0 && rc != 0:
				normal = compose(a, 0, sb, 0)
			case rc == 0 && rb != 0:
				normal = compose(a, 0, 0, sc)
			default:
				normal = dir
			}
		}
		return surfgen.Vertex{
			Pos:    compose(a, t, cb+sb*rb*cos, cc+sc*rc*sin),
			Normal: surfgen.Normalize(normal),
		}
	}, sb*sc < 0)
}

// roundedCorner returns the ellipsoid octant selected by the signs s at
// the matching inner box corner, parametrized by polar angle from the
// Z axis and azimuth from the X axis.
func roundedCorner(s, lo, hi, radii r3.Vec, angles []float64) surfgen.Generator {
	center := r3.Vec{X: pick(s.X, lo, hi, 0), Y: pick(s.Y, lo, hi, 1), Z: pick(s.Z, lo, hi, 2)}
	return surfgen.QuadrangulateVertices(angles, angles, func(theta, phi float64) surfgen.Vertex {
		sinT, cosT := math.Sincos(theta)
		sinP, cosP := math.Sincos(phi)
		dir := d3.MulElem(s, r3.Vec{X: sinT * cosP, Y: sinT * sinP, Z: cosT})
		normal := r3.Vec{
			X: dir.X * radii.Y * radii.Z,
			Y: dir.Y * radii.X * radii.Z,
			Z: dir.Z * radii.X * radii.Y,
		}
		if normal == (r3.Vec{}) {
			normal = flatCornerNormal(s, radii, dir)
		}
		return surfgen.Vertex{
			Pos:    r3.Add(center, d3.MulElem(radii, dir)),
			Normal: surfgen.Normalize(normal),
		}
	}, s.X*s.Y*s.Z < 0)
}

// flatCornerNormal returns the normal of a corner patch flattened onto
// a face plane by a single zero radius, or dir otherwise.
func flatCornerNormal(s, radii, dir r3.Vec) r3.Vec {
	zero := -1
	for i := 0; i < 3; i++ {
		if d3.Component(radii, i) != 0 {
			continue
		}
		if zero >= 0 {
			return dir
		}
		zero = i
	}
	if zero < 0 {
		return dir
	}
	return d3.Axis(zero, d3.Component(s, zero))
}
