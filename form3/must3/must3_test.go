package must3

import (
	"math"
	"testing"

	"github.com/soypat/surfgen"
	"gonum.org/v1/gonum/spatial/r3"
)

const areaTol = 1e-12

func TestRoundedBoxCounts(t *testing.T) {
	min, max := r3.Vec{X: -1, Y: -1, Z: -0.8}, r3.Vec{X: 1, Y: 1}
	for n := 1; n <= 6; n++ {
		m := surfgen.Generate(RoundedBox(min, max, r3.Vec{X: .04, Y: .04, Z: .04}, n))
		wantV := 24 + 24*(n+1) + 8*(n+1)*(n+1)
		wantT := 12 + 24*n + 16*n*n
		if len(m.Vertices) != wantV || len(m.Triangles) != wantT {
			t.Errorf("n=%d: want %d vertices %d triangles, got %d, %d", n, wantV, wantT, len(m.Vertices), len(m.Triangles))
		}
		if err := m.Validate(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRoundedBoxOutward(t *testing.T) {
	min, max := r3.Vec{X: -1, Y: -2, Z: -0.8}, r3.Vec{X: 1, Y: 0.5, Z: 0.3}
	for _, radii := range []r3.Vec{
		{X: .04, Y: .04, Z: .04},
		{X: .3, Y: .1, Z: .2},
		{X: 0.5, Y: 0, Z: 0.1},
	} {
		// Opposite corners in any order describe the same box.
		for _, corners := range [][2]r3.Vec{
			{min, max},
			{max, min},
			{{X: max.X, Y: min.Y, Z: min.Z}, {X: min.X, Y: max.Y, Z: max.Z}},
			{{X: min.X, Y: max.Y, Z: max.Z}, {X: max.X, Y: min.Y, Z: min.Z}},
		} {
			m := surfgen.Generate(RoundedBox(corners[0], corners[1], radii, 4))
			assertOutward(t, m, r3.Scale(0.5, r3.Add(min, max)))
			if b := m.Bounds(); r3.Norm(r3.Sub(b.Min, min)) > 1e-12 || r3.Norm(r3.Sub(b.Max, max)) > 1e-12 {
				t.Errorf("radii %v corners %v: bounds %v differ from box", radii, corners, b)
			}
		}
	}
}

func TestBoxSwappedCorners(t *testing.T) {
	min, max := r3.Vec{X: -1, Y: -1, Z: -0.8}, r3.Vec{X: 1, Y: 1}
	want := surfgen.Generate(Box(min, max))
	got := surfgen.Generate(Box(r3.Vec{X: 1, Y: -1}, r3.Vec{X: -1, Y: 1, Z: -0.8}))
	if len(got.Triangles) != len(want.Triangles) {
		t.Fatalf("want %d triangles, got %d", len(want.Triangles), len(got.Triangles))
	}
	for i := range want.Triangles {
		if triangle(got, i) != triangle(want, i) {
			t.Errorf("triangle %d differs with swapped corners", i)
		}
	}
	assertOutward(t, got, r3.Vec{Z: -0.4})
}

func TestZeroRadiusRoundedBox(t *testing.T) {
	min, max := r3.Vec{X: -1, Y: -1, Z: -0.8}, r3.Vec{X: 1, Y: 1}
	box := surfgen.Generate(Box(min, max))
	for n := 1; n <= 5; n++ {
		m := surfgen.Generate(RoundedBox(min, max, r3.Vec{}, n))
		if m.Bounds() != box.Bounds() {
			t.Errorf("n=%d: bounds %v, want %v", n, m.Bounds(), box.Bounds())
		}
		var nonDegenerate [][3]r3.Vec
		for i := range m.Triangles {
			if area(m, i) > areaTol {
				nonDegenerate = append(nonDegenerate, triangle(m, i))
			}
		}
		if len(nonDegenerate) != len(box.Triangles) {
			t.Fatalf("n=%d: want %d non degenerate triangles, got %d", n, len(box.Triangles), len(nonDegenerate))
		}
		for i := range box.Triangles {
			if nonDegenerate[i] != triangle(box, i) {
				t.Errorf("n=%d: triangle %d differs from box", n, i)
			}
		}
	}
}

func TestBox(t *testing.T) {
	m := surfgen.Generate(Box(r3.Vec{}, r3.Vec{X: 1, Y: 2, Z: 3}))
	if len(m.Vertices) != 24 || len(m.Triangles) != 12 {
		t.Fatalf("want 24 vertices 12 triangles, got %d, %d", len(m.Vertices), len(m.Triangles))
	}
	assertOutward(t, m, r3.Vec{X: .5, Y: 1, Z: 1.5})
	var total float64
	for i := range m.Triangles {
		total += area(m, i)
	}
	if want := 2 * (1*2 + 2*3 + 1*3.); math.Abs(total-want) > 1e-12 {
		t.Errorf("want surface area %g, got %g", want, total)
	}
}

func TestDome(t *testing.T) {
	for _, sines := range []bool{false, true} {
		for n := 1; n <= 8; n++ {
			m := surfgen.Generate(Dome(DomeSteps(n, sines)))
			wantV := 4 * (n + 1) * (n + 2) / 2
			if len(m.Vertices) != wantV || len(m.Triangles) != 4*n*n {
				t.Errorf("n=%d: want %d vertices %d triangles, got %d, %d", n, wantV, 4*n*n, len(m.Vertices), len(m.Triangles))
			}
			for i, v := range m.Vertices {
				if math.Abs(r3.Norm(v.Pos)-1) > 1e-12 || v.Pos.Z < 0 {
					t.Fatalf("vertex %d not on upper unit sphere: %v", i, v.Pos)
				}
				if v.Normal != v.Pos {
					t.Fatalf("vertex %d normal should equal position", i)
				}
			}
			assertOutward(t, m, r3.Vec{})
		}
	}
}

func TestDomeSteps(t *testing.T) {
	lin := DomeSteps(4, false)
	sin := DomeSteps(4, true)
	if len(lin) != 5 || len(sin) != 5 {
		t.Fatalf("want 5 steps, got %d, %d", len(lin), len(sin))
	}
	if lin[0] != 0 || lin[4] != 1 || sin[0] != 0 || math.Abs(sin[4]-1) > 1e-15 {
		t.Errorf("steps should run from 0 to 1: %v %v", lin, sin)
	}
	if math.Abs(sin[2]-math.Sqrt2/2) > 1e-15 {
		t.Errorf("midpoint sine step: got %g", sin[2])
	}
}

func TestCylinderWall(t *testing.T) {
	phi := surfgen.StepList(0, surfgen.Tau, surfgen.Tau/100)
	m := surfgen.Generate(CylinderWall(0.6, phi, 0, 0.4))
	if len(m.Vertices) != 2*len(phi) || len(m.Triangles) != 2*(len(phi)-1) {
		t.Fatalf("got %d vertices %d triangles", len(m.Vertices), len(m.Triangles))
	}
	for i := range m.Triangles {
		tri := triangle(m, i)
		c := r3.Scale(1./3, r3.Add(r3.Add(tri[0], tri[1]), tri[2]))
		c.Z = 0
		if r3.Dot(faceNormal(m, i), c) <= 0 {
			t.Errorf("wall triangle %d faces inward", i)
		}
	}
}

func TestDisk(t *testing.T) {
	phi := surfgen.StepList(0, surfgen.Tau, surfgen.Tau/64)
	m := surfgen.Generate(Disk(2, 0.5, phi))
	if len(m.Vertices) != len(phi)+1 || len(m.Triangles) != len(phi)-1 {
		t.Fatalf("got %d vertices %d triangles", len(m.Vertices), len(m.Triangles))
	}
	var total float64
	for i := range m.Triangles {
		n := faceNormal(m, i)
		if n.Z <= 0 {
			t.Errorf("disk triangle %d faces down", i)
		}
		total += area(m, i)
	}
	// 64-gon inscribed in the circle.
	want := 0.5 * 64 * 4 * math.Sin(surfgen.Tau/64)
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("want area %g, got %g", want, total)
	}
}

func TestPanics(t *testing.T) {
	for _, test := range []struct {
		name string
		msg  string
		f    func()
	}{
		{name: "subdivisions", msg: "subdivisions < 1", f: func() { RoundedBox(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{}, 0) }},
		{name: "box min", msg: "min not finite", f: func() { Box(r3.Vec{X: math.NaN()}, r3.Vec{}) }},
		{name: "radii", msg: "radii not finite", f: func() { RoundedBox(r3.Vec{}, r3.Vec{}, r3.Vec{Z: math.Inf(1)}, 2) }},
		{name: "disk", msg: "z not finite", f: func() { Disk(1, math.NaN(), nil) }},
	} {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if a := recover(); a != test.msg {
					t.Errorf("want panic %q, got %v", test.msg, a)
				}
			}()
			test.f()
		})
	}
}

func BenchmarkRoundedBox(b *testing.B) {
	g := RoundedBox(r3.Vec{X: -1, Y: -1, Z: -0.8}, r3.Vec{X: 1, Y: 1}, r3.Vec{X: .04, Y: .04, Z: .04}, 8)
	for i := 0; i < b.N; i++ {
		surfgen.Generate(g)
	}
}

// assertOutward checks every non degenerate triangle of a convex mesh
// faces away from center and agrees with its vertex normals.
func assertOutward(t *testing.T, m surfgen.Mesh, center r3.Vec) {
	t.Helper()
	for i, tri := range m.Triangles {
		if area(m, i) <= areaTol {
			continue
		}
		n := faceNormal(m, i)
		p := triangle(m, i)
		c := r3.Scale(1./3, r3.Add(r3.Add(p[0], p[1]), p[2]))
		if r3.Dot(n, r3.Sub(c, center)) <= 0 {
			t.Fatalf("triangle %d %v faces inward", i, p)
		}
		for _, idx := range tri {
			if vn := m.Vertices[idx].Normal; r3.Dot(n, vn) < 0 {
				t.Fatalf("triangle %d disagrees with vertex %d normal %v", i, idx, vn)
			}
		}
	}
}

func triangle(m surfgen.Mesh, i int) [3]r3.Vec {
	t := m.Triangles[i]
	return [3]r3.Vec{m.Vertices[t[0]].Pos, m.Vertices[t[1]].Pos, m.Vertices[t[2]].Pos}
}

func faceNormal(m surfgen.Mesh, i int) r3.Vec {
	p := triangle(m, i)
	return r3.Cross(r3.Sub(p[1], p[0]), r3.Sub(p[2], p[0]))
}

func area(m surfgen.Mesh, i int) float64 {
	return r3.Norm(faceNormal(m, i)) / 2
}
