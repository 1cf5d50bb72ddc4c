package surfgen

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is a mesh vertex. The zero value of Normal means the generator
// supplied no normal and the rendering layer should compute one.
type Vertex struct {
	Pos    r3.Vec
	Normal r3.Vec
}

// HasNormal reports whether the vertex carries a normal.
func (v Vertex) HasNormal() bool { return v.Normal != (r3.Vec{}) }

// Builder accumulates the vertices and faces a Generator emits.
type Builder interface {
	// AddVertex appends a vertex and returns its index in emission order.
	AddVertex(v Vertex) int
	// AddTriangle appends triangle i,j,k. The winding is counter-clockwise
	// when seen from the side the normal points to. invert flips it.
	AddTriangle(i, j, k int, invert bool)
	// AddQuadrangle appends two triangles covering quad i,j,k,l split
	// along the i,k diagonal.
	AddQuadrangle(i, j, k, l int, invert bool)
}

// Generator describes a surface by calling a Builder's methods.
// Calling a Generator twice with equivalent Builders must
// produce identical output.
type Generator func(b Builder)

// Generate runs g against a fresh MeshBuilder and returns the frozen result.
func Generate(g Generator) Mesh {
	var mb MeshBuilder
	g(&mb)
	return mb.Mesh()
}

// MeshBuilder is the Builder that accumulates an indexed Mesh.
// It lives for exactly one generation pass.
type MeshBuilder struct {
	vertices  []Vertex
	triangles [][3]int
	frozen    bool
}

var _ Builder = (*MeshBuilder)(nil)

// NewMeshBuilder returns a MeshBuilder with preallocated room for
// the argument number of vertices and triangles.
func NewMeshBuilder(vertexCap, triangleCap int) *MeshBuilder {
	return &MeshBuilder{
		vertices:  make([]Vertex, 0, vertexCap),
		triangles: make([][3]int, 0, triangleCap),
	}
}

// AddVertex implements Builder.
func (mb *MeshBuilder) AddVertex(v Vertex) int {
	mb.mustNotBeFrozen()
	mb.vertices = append(mb.vertices, v)
	return len(mb.vertices) - 1
}

// AddTriangle implements Builder. Referencing a vertex that was not
// yet added panics.
func (mb *MeshBuilder) AddTriangle(i, j, k int, invert bool) {
	mb.mustNotBeFrozen()
	mb.checkIndex(i)
	mb.checkIndex(j)
	mb.checkIndex(k)
	if invert {
		j, k = k, j
	}
	mb.triangles = append(mb.triangles, [3]int{i, j, k})
}

// AddQuadrangle implements Builder.
func (mb *MeshBuilder) AddQuadrangle(i, j, k, l int, invert bool) {
	mb.AddTriangle(i, j, k, invert)
	mb.AddTriangle(i, k, l, invert)
}

// NumVertices returns the number of vertices added so far.
func (mb *MeshBuilder) NumVertices() int { return len(mb.vertices) }

// NumTriangles returns the number of triangles added so far.
func (mb *MeshBuilder) NumTriangles() int { return len(mb.triangles) }

// Mesh freezes the builder and returns the accumulated mesh.
// Adding to a frozen builder panics.
func (mb *MeshBuilder) Mesh() Mesh {
	mb.frozen = true
	return Mesh{
		Vertices:  mb.vertices,
		Triangles: mb.triangles,
	}
}

func (mb *MeshBuilder) checkIndex(i int) {
	if i < 0 || i >= len(mb.vertices) {
		panic(fmt.Sprintf("surfgen: triangle references vertex %d, only %d vertices added", i, len(mb.vertices)))
	}
}

func (mb *MeshBuilder) mustNotBeFrozen() {
	if mb.frozen {
		panic("surfgen: MeshBuilder used after Mesh was called")
	}
}
