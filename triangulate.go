package surfgen

// Triangulate covers the triangular lattice of subdivision order n with
// n*n triangles. Lattice points are the integer triples (i,j,k) with
// i+j+k == n. vertexAt maps a lattice point to a builder vertex index and
// emit receives each triangle.
//
// vertexAt is called exactly once per lattice point, so (n+1)(n+2)/2
// calls in total, and the returned index is reused by every triangle
// touching that point. Triangles are emitted in the orientation of the
// lattice corners (n,0,0), (0,n,0), (0,0,n): when the lattice is mapped
// to the corners A, B, C of a triangle the emitted triangles face the
// direction of (B-A)×(C-A).
//
// n < 0 emits nothing.
func Triangulate(n int, vertexAt func(i, j, k int) int, emit func(a, b, c int)) {
	if n < 0 {
		return
	}
	// Rows are indexed by i. Row i holds the n-i+1 points with j=0..n-i.
	prev := make([]int, 0, n+1)
	curr := make([]int, 0, n+1)
	for j := 0; j <= n; j++ {
		prev = append(prev, vertexAt(0, j, n-j))
	}
	for i := 1; i <= n; i++ {
		curr = curr[:0]
		for j := 0; j <= n-i; j++ {
			curr = append(curr, vertexAt(i, j, n-i-j))
		}
		// Cells between row i-1 (prev) and row i (curr).
		for j := 0; j <= n-i; j++ {
			// Upward cell: (i-1,j), (i,j), (i-1,j+1).
			emit(prev[j], curr[j], prev[j+1])
			if j < n-i {
				// Downward cell: (i,j), (i,j+1), (i-1,j+1).
				emit(curr[j], curr[j+1], prev[j+1])
			}
		}
		prev, curr = curr, prev
	}
}
