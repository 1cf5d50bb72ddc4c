package surfgen

import "fmt"

// Combine returns a Generator running each generator in order. Every
// generator sees its own vertex index space starting at 0, as if it were
// writing to a fresh Builder; indices are rebased onto the parent
// Builder as they pass through.
//
// Vertices that coincide across generators are not welded. Each
// generator keeps its own vertices and normals along shared edges.
func Combine(generators ...Generator) Generator {
	return func(b Builder) {
		for _, g := range generators {
			ob := offsetBuilder{parent: b}
			g(&ob)
		}
	}
}

// offsetBuilder forwards to parent, translating between the local index
// space of one generator and the parent's index space.
type offsetBuilder struct {
	parent Builder
	// base is the parent index of local vertex 0.
	base int
	// n is the number of vertices added through this builder.
	n int
}

func (ob *offsetBuilder) AddVertex(v Vertex) int {
	idx := ob.parent.AddVertex(v)
	if ob.n == 0 {
		ob.base = idx
	} else if idx != ob.base+ob.n {
		panic(fmt.Sprintf("surfgen: parent builder returned vertex %d, expected contiguous %d", idx, ob.base+ob.n))
	}
	ob.n++
	return idx - ob.base
}

func (ob *offsetBuilder) AddTriangle(i, j, k int, invert bool) {
	ob.parent.AddTriangle(ob.rebase(i), ob.rebase(j), ob.rebase(k), invert)
}

func (ob *offsetBuilder) AddQuadrangle(i, j, k, l int, invert bool) {
	ob.parent.AddQuadrangle(ob.rebase(i), ob.rebase(j), ob.rebase(k), ob.rebase(l), invert)
}

func (ob *offsetBuilder) rebase(i int) int {
	if i < 0 || i >= ob.n {
		panic(fmt.Sprintf("surfgen: combined generator references vertex %d outside its own %d vertices", i, ob.n))
	}
	return i + ob.base
}
