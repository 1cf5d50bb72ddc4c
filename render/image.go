package render

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/surfgen"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the preview camera and shading.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye       r3.Vec
	Near, Far float64
	// vertical field of view in degrees
	Fovy float64
	// output width and height in pixels
	Width, Height int
	// optional supersampling, values below 1 are treated as 1
	Supersample int
	// object and background colors as hex strings
	Color, Background string
	// DoubleSide disables back face culling so that open surfaces
	// are visible from both sides.
	DoubleSide bool
}

// DefaultView looks at the origin from the (3,3,3) corner with Z up.
func DefaultView() View {
	return View{
		Up:          r3.Vec{Z: 1},
		Eye:         r3.Vec{X: 3, Y: 3, Z: 3},
		Near:        1,
		Far:         10,
		Fovy:        30,
		Width:       640,
		Height:      480,
		Supersample: 2,
		Color:       "#468966",
		Background:  "#FFF8E3",
	}
}

// degenerateTol is the triangle area below which triangles are not drawn.
const degenerateTol = 1e-12

// Image renders m with a phong shader. The mesh is fitted in a bi-unit
// cube centered at the origin before drawing.
func Image(m surfgen.Mesh, view View) (image.Image, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("view width and height must be positive")
	}
	scale := view.Supersample
	if scale < 1 {
		scale = 1
	}
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)          // camera position
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
	)
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(view.Background))
	if view.DoubleSide {
		context.Cull = fauxgl.CullNone
	}
	mesh := fauxMesh(m)
	if len(mesh.Triangles) > 0 {
		// fit mesh in a bi-unit cube centered at the origin
		mesh.BiUnitCube()
		aspect := float64(view.Width) / float64(view.Height)
		matrix := fauxgl.LookAt(eye, center, up).Perspective(view.Fovy, aspect, view.Near, view.Far)
		shader := fauxgl.NewPhongShader(matrix, light, eye)
		shader.ObjectColor = fauxgl.HexColor(view.Color)
		context.Shader = shader
		context.DrawMesh(mesh)
	}
	img := context.Image()
	if scale > 1 {
		// downsample image for antialiasing
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

// EncodePNG renders m and writes the PNG encoding to w.
func EncodePNG(w io.Writer, m surfgen.Mesh, view View) error {
	img, err := Image(m, view)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG renders m to a PNG file at path.
func SavePNG(path string, m surfgen.Mesh, view View) error {
	img, err := Image(m, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

// fauxMesh converts m to a fauxgl mesh. Vertex normals are carried over;
// vertices without a normal get the face normal. Degenerate triangles are dropped.
func fauxMesh(m surfgen.Mesh) *fauxgl.Mesh {
	tris := make([]*fauxgl.Triangle, 0, len(m.Triangles))
	for i, t := range Triangles(m) {
		if t.Degenerate(degenerateTol) {
			continue
		}
		var fv [3]fauxgl.Vertex
		for j, idx := range m.Triangles[i] {
			v := m.Vertices[idx]
			fv[j] = fauxgl.Vertex{
				Position: fauxgl.V(v.Pos.X, v.Pos.Y, v.Pos.Z),
				Normal:   fauxgl.V(v.Normal.X, v.Normal.Y, v.Normal.Z),
			}
		}
		tris = append(tris, fauxgl.NewTriangle(fv[0], fv[1], fv[2]))
	}
	return fauxgl.NewTriangleMesh(tris)
}
