package surfgen

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestMeshBuilderInvert(t *testing.T) {
	mb := NewMeshBuilder(3, 2)
	a := mb.AddVertex(Vertex{Pos: r3.Vec{}})
	b := mb.AddVertex(Vertex{Pos: r3.Vec{X: 1}})
	c := mb.AddVertex(Vertex{Pos: r3.Vec{Y: 1}})
	mb.AddTriangle(a, b, c, false)
	mb.AddTriangle(a, b, c, true)
	if mb.NumVertices() != 3 || mb.NumTriangles() != 2 {
		t.Fatalf("got %d vertices %d triangles", mb.NumVertices(), mb.NumTriangles())
	}
	m := mb.Mesh()
	if m.Triangles[0] != [3]int{0, 1, 2} {
		t.Errorf("unexpected triangle %v", m.Triangles[0])
	}
	if m.Triangles[1] != [3]int{0, 2, 1} {
		t.Errorf("inverted triangle should swap last two indices, got %v", m.Triangles[1])
	}
}

func TestMeshBuilderQuadrangle(t *testing.T) {
	var mb MeshBuilder
	for i := 0; i < 4; i++ {
		mb.AddVertex(Vertex{})
	}
	mb.AddQuadrangle(0, 1, 2, 3, false)
	mb.AddQuadrangle(0, 1, 2, 3, true)
	want := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 2, 1}, {0, 3, 2}}
	got := mb.Mesh().Triangles
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("triangle %d: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestMeshBuilderPanics(t *testing.T) {
	for _, test := range []struct {
		name string
		msg  string
		f    func(mb *MeshBuilder)
	}{
		{
			name: "index out of range",
			msg:  "only 2 vertices added",
			f: func(mb *MeshBuilder) {
				mb.AddVertex(Vertex{})
				mb.AddVertex(Vertex{})
				mb.AddTriangle(0, 1, 2, false)
			},
		},
		{
			name: "negative index",
			msg:  "vertex -1",
			f: func(mb *MeshBuilder) {
				mb.AddVertex(Vertex{})
				mb.AddTriangle(0, 0, -1, false)
			},
		},
		{
			name: "frozen",
			msg:  "after Mesh was called",
			f: func(mb *MeshBuilder) {
				mb.Mesh()
				mb.AddVertex(Vertex{})
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				a := recover()
				if a == nil {
					t.Fatal("expected panic")
				}
				if s, _ := a.(string); !strings.Contains(s, test.msg) {
					t.Errorf("panic %q does not contain %q", a, test.msg)
				}
			}()
			test.f(&MeshBuilder{})
		})
	}
}

func TestVertexHasNormal(t *testing.T) {
	if (Vertex{Pos: r3.Vec{X: 1}}).HasNormal() {
		t.Error("zero normal reported as present")
	}
	if !(Vertex{Normal: r3.Vec{Z: 1}}).HasNormal() {
		t.Error("normal not reported")
	}
}
