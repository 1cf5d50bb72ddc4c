package surfgen

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangulateSingle(t *testing.T) {
	var points [][3]int
	var tris [][3]int
	Triangulate(1, func(i, j, k int) int {
		points = append(points, [3]int{i, j, k})
		return len(points) - 1
	}, func(a, b, c int) {
		tris = append(tris, [3]int{a, b, c})
	})
	if len(points) != 3 || len(tris) != 1 {
		t.Fatalf("want 3 points 1 triangle, got %d, %d", len(points), len(tris))
	}
	want := map[[3]int]bool{{1, 0, 0}: true, {0, 1, 0}: true, {0, 0, 1}: true}
	for _, idx := range tris[0] {
		if !want[points[idx]] {
			t.Errorf("unexpected lattice point %v", points[idx])
		}
		delete(want, points[idx])
	}
}

func TestTriangulateCounts(t *testing.T) {
	for n := -1; n <= 12; n++ {
		var calls, emitted int
		seen := make(map[[3]int]bool)
		Triangulate(n, func(i, j, k int) int {
			if i < 0 || j < 0 || k < 0 || i+j+k != n {
				t.Fatalf("n=%d: bad lattice point %d,%d,%d", n, i, j, k)
			}
			p := [3]int{i, j, k}
			if seen[p] {
				t.Fatalf("n=%d: lattice point %v requested twice", n, p)
			}
			seen[p] = true
			calls++
			return calls - 1
		}, func(a, b, c int) {
			if a == b || b == c || a == c {
				t.Fatalf("n=%d: triangle with repeated vertex %d,%d,%d", n, a, b, c)
			}
			emitted++
		})
		wantCalls, wantTris := 0, 0
		if n >= 0 {
			wantCalls = (n + 1) * (n + 2) / 2
			wantTris = n * n
		}
		if calls != wantCalls || emitted != wantTris {
			t.Errorf("n=%d: want %d points %d triangles, got %d, %d", n, wantCalls, wantTris, calls, emitted)
		}
	}
}

func TestTriangulateOrientation(t *testing.T) {
	// Map the lattice onto the triangle A=X, B=Y, C=Z.
	const n = 5
	var mb MeshBuilder
	Triangulate(n, func(i, j, k int) int {
		return mb.AddVertex(Vertex{Pos: r3.Scale(1./n, r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)})})
	}, func(a, b, c int) {
		mb.AddTriangle(a, b, c, false)
	})
	m := mb.Mesh()
	want := r3.Cross(r3.Vec{X: -1, Y: 1}, r3.Vec{X: -1, Z: 1})
	var area float64
	for i := range m.Triangles {
		got := faceNormal(m, i)
		if r3.Dot(got, want) <= 0 {
			t.Errorf("triangle %d faces %v, want direction %v", i, got, want)
		}
		area += r3.Norm(got) / 2
	}
	// Triangles tile the lattice triangle without overlap.
	if wantArea := r3.Norm(want) / 2; abs(area-wantArea) > 1e-12 {
		t.Errorf("want total area %g, got %g", wantArea, area)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
