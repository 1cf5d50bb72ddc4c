package render

import (
	"math"
	"sort"

	"github.com/soypat/surfgen"
	"github.com/soypat/surfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ kdtree.Interface  = kdVertices{}
	_ kdtree.Comparable = kdVertex{}
)

// Seam is a pair of distinct vertices at the same position.
type Seam struct {
	A, B int
	// NormalAngle is the angle between the normals of A and B in radians.
	// It is zero if either vertex lacks a normal.
	NormalAngle float64
}

// Seams returns every pair of distinct vertices of m lying within tol
// of each other, sorted by A then B with A < B. Seams are expected
// where independently generated patches meet.
func Seams(m surfgen.Mesh, tol float64) []Seam {
	if len(m.Vertices) < 2 {
		return nil
	}
	pts := make(kdVertices, len(m.Vertices))
	for i, v := range m.Vertices {
		pts[i] = kdVertex{pos: v.Pos, idx: i}
	}
	tree := kdtree.New(pts, false)
	var seams []Seam
	for i, v := range m.Vertices {
		keep := kdtree.NewDistKeeper(tol * tol)
		tree.NearestSet(keep, kdVertex{pos: v.Pos, idx: -1})
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue // DistKeeper sentinel.
			}
			other := c.Comparable.(kdVertex)
			if other.idx <= i {
				continue
			}
			seams = append(seams, Seam{
				A:           i,
				B:           other.idx,
				NormalAngle: normalAngle(v, m.Vertices[other.idx]),
			})
		}
	}
	sort.Slice(seams, func(i, j int) bool {
		if seams[i].A != seams[j].A {
			return seams[i].A < seams[j].A
		}
		return seams[i].B < seams[j].B
	})
	return seams
}

func normalAngle(a, b surfgen.Vertex) float64 {
	if !a.HasNormal() || !b.HasNormal() {
		return 0
	}
	return math.Atan2(r3.Norm(r3.Cross(a.Normal, b.Normal)), r3.Dot(a.Normal, b.Normal))
}

type kdVertices []kdVertex

type kdVertex struct {
	pos r3.Vec
	idx int
}

func (k kdVertices) Index(i int) kdtree.Comparable {
	return k[i]
}

// Len returns the length of the list.
func (k kdVertices) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVertices) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), vertices: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdVertices) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//  c = a_d - b_d
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return d3.Component(a.pos, int(d)) - d3.Component(b.(kdVertex).pos, int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int {
	return 3
}

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.pos, b.(kdVertex).pos))
}

type kdPlane struct {
	dim      int
	vertices kdVertices
}

func (p kdPlane) Less(i, j int) bool {
	return p.vertices[i].Compare(p.vertices[j], kdtree.Dim(p.dim)) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
