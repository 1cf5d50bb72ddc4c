package surfgen

import "gonum.org/v1/gonum/spatial/r3"

// PositionFunc maps a point of the parameter domain to 3D space.
type PositionFunc func(u, v float64) r3.Vec

// VertexFunc maps a point of the parameter domain to a vertex.
type VertexFunc func(u, v float64) Vertex

// Quadrangulate returns a Generator for the grid of quads spanned by the
// step sequences. f is evaluated exactly once per (u,v) pair so vertices
// are shared between neighbouring quads. The quads face the direction
// of ∂f/∂u × ∂f/∂v.
//
// uSteps of length m and vSteps of length n produce m*n vertices and
// 2*(m-1)*(n-1) triangles. Sequences shorter than 2 produce no faces.
func Quadrangulate(uSteps, vSteps []float64, f PositionFunc) Generator {
	return QuadrangulateVertices(uSteps, vSteps, func(u, v float64) Vertex {
		return Vertex{Pos: f(u, v)}
	}, false)
}

// QuadrangulateVertices is like Quadrangulate but f supplies full vertices
// and invert flips the winding of every quad.
func QuadrangulateVertices(uSteps, vSteps []float64, f VertexFunc, invert bool) Generator {
	return func(b Builder) {
		m, n := len(uSteps), len(vSteps)
		// Grid indices in row-major order, local to this pass.
		grid := make([]int, 0, m*n)
		for _, u := range uSteps {
			for _, v := range vSteps {
				grid = append(grid, b.AddVertex(f(u, v)))
			}
		}
		at := func(iu, iv int) int { return grid[iu*n+iv] }
		for iu := 0; iu < m-1; iu++ {
			for iv := 0; iv < n-1; iv++ {
				b.AddQuadrangle(at(iu, iv), at(iu+1, iv), at(iu+1, iv+1), at(iu, iv+1), invert)
			}
		}
	}
}
