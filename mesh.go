package surfgen

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/surfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh. Vertices are in emission order and
// every triangle index is less than len(Vertices).
type Mesh struct {
	Vertices  []Vertex
	Triangles [][3]int
}

// Positions returns the flat x,y,z position buffer.
func (m Mesh) Positions() []float32 {
	buf := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		buf = append(buf, float32(v.Pos.X), float32(v.Pos.Y), float32(v.Pos.Z))
	}
	return buf
}

// Normals returns the flat normal buffer or nil if no vertex
// carries a normal. Vertices without normal get a zero triple.
func (m Mesh) Normals() []float32 {
	if !m.hasNormals() {
		return nil
	}
	buf := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		buf = append(buf, float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z))
	}
	return buf
}

// Indices returns the flat triangle index buffer.
func (m Mesh) Indices() []uint32 {
	buf := make([]uint32, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		buf = append(buf, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return buf
}

// Triangles32 returns the triangle soup in single precision.
func (m Mesh) Triangles32() []ms3.Triangle {
	tris := make([]ms3.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		for j := range t {
			p := m.Vertices[t[j]].Pos
			tris[i][j] = ms3.Vec{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
		}
	}
	return tris
}

// Bounds returns the bounding box of all vertices. An empty
// mesh has a zero bounding box.
func (m Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	bb := d3.Box{Min: m.Vertices[0].Pos, Max: m.Vertices[0].Pos}
	for _, v := range m.Vertices[1:] {
		bb = bb.Include(v.Pos)
	}
	return r3.Box(bb)
}

// Validate checks the mesh is consistent and representable
// in the single precision buffers handed to the rendering layer.
func (m Mesh) Validate() error {
	n := len(m.Vertices)
	if int64(n) > math.MaxUint32 { // int64 cast so that this works on 32bit machines.
		return errors.New("vertex count exceeds uint32 index range")
	}
	for it, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= n {
				return fmt.Errorf("triangle %d references vertex %d out of %d", it, idx, n)
			}
		}
	}
	pos := m.Positions()
	for i := 0; i < len(pos); i += 3 {
		if bad3F32(pos[i : i+3]) {
			return fmt.Errorf("vertex %d position not finite in single precision", i/3)
		}
	}
	nrm := m.Normals()
	for i := 0; i < len(nrm); i += 3 {
		if bad3F32(nrm[i : i+3]) {
			return fmt.Errorf("vertex %d normal not finite in single precision", i/3)
		}
	}
	return nil
}

func (m Mesh) hasNormals() bool {
	for _, v := range m.Vertices {
		if v.HasNormal() {
			return true
		}
	}
	return false
}

func bad3F32(f []float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
