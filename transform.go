package surfgen

import (
	"github.com/soypat/surfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transformed returns a Generator emitting g's surface scaled by scale,
// rotated by rot and translated by position, in that order. Normals are
// mapped accordingly and when the transform mirrors space (an odd number
// of negative scale components) the winding of every face is flipped so
// that faces keep pointing the same way relative to the surface.
// The zero Rotation is treated as no rotation.
func Transformed(g Generator, position, scale r3.Vec, rot r3.Rotation) Generator {
	if rot == (r3.Rotation{}) {
		rot = r3.Rotation{Real: 1}
	}
	return transformed(g, d3.ComposeTransform(position, scale, rot))
}

func transformed(g Generator, t d3.Transform) Generator {
	return func(b Builder) {
		tf := t
		if outer, ok := b.(*transformBuilder); ok {
			// Nested transforms collapse into one.
			tf = outer.t.Mul(t)
			b = outer.parent
		}
		g(&transformBuilder{parent: b, t: tf, mirror: tf.Det() < 0})
	}
}

// Translate returns g moved by offset.
func Translate(g Generator, offset r3.Vec) Generator {
	return transformed(g, d3.Transform{}.Translate(offset))
}

// Scale returns g scaled by the factors of s about the origin.
// Negative factors mirror the surface.
func Scale(g Generator, s r3.Vec) Generator {
	return Transformed(g, r3.Vec{}, s, r3.Rotation{})
}

// Rotate returns g rotated by angle radians about axis.
func Rotate(g Generator, angle float64, axis r3.Vec) Generator {
	return Transformed(g, r3.Vec{}, d3.Elem(1), r3.NewRotation(angle, axis))
}

type transformBuilder struct {
	parent Builder
	t      d3.Transform
	mirror bool
}

func (tb *transformBuilder) AddVertex(v Vertex) int {
	v.Pos = tb.t.Transform(v.Pos)
	if v.HasNormal() {
		n := tb.t.TransformNormal(v.Normal)
		if tb.mirror {
			n = r3.Scale(-1, n)
		}
		v.Normal = Normalize(n)
	}
	return tb.parent.AddVertex(v)
}

func (tb *transformBuilder) AddTriangle(i, j, k int, invert bool) {
	tb.parent.AddTriangle(i, j, k, invert != tb.mirror)
}

func (tb *transformBuilder) AddQuadrangle(i, j, k, l int, invert bool) {
	tb.parent.AddQuadrangle(i, j, k, l, invert != tb.mirror)
}
