// Package render consumes generated meshes: triangle soups for
// rendering layers, PNG previews and seam analysis.
package render

import (
	"github.com/soypat/surfgen"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle given by its vertex positions.
type Triangle3 [3]r3.Vec

// Normal returns the unit normal of the triangle following its
// winding. Degenerate triangles return the zero vector.
func (t Triangle3) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if l := r3.Norm(n); l > 0 {
		return r3.Scale(1/l, n)
	}
	return r3.Vec{}
}

// Area returns the area of the triangle.
func (t Triangle3) Area() float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0])))
}

// Centroid returns the mean of the triangle's vertices.
func (t Triangle3) Centroid() r3.Vec {
	return r3.Scale(1./3., r3.Add(r3.Add(t[0], t[1]), t[2]))
}

// Degenerate returns true if the triangle's area is not above tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return t.Area() <= tol
}

// Triangles returns the triangle soup of the mesh.
func Triangles(m surfgen.Mesh) []Triangle3 {
	tris := make([]Triangle3, len(m.Triangles))
	for i, t := range m.Triangles {
		tris[i] = Triangle3{m.Vertices[t[0]].Pos, m.Vertices[t[1]].Pos, m.Vertices[t[2]].Pos}
	}
	return tris
}

// NonDegenerate returns the triangles of the mesh with area above tol.
// Indices refer to the mesh's triangle list.
func NonDegenerate(m surfgen.Mesh, tol float64) (idx []int) {
	for i, t := range Triangles(m) {
		if !t.Degenerate(tol) {
			idx = append(idx, i)
		}
	}
	return idx
}
