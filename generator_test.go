package gg3d

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStepRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		steps    int
	}{
		{"unit", 0, 1, 2},
		{"circle", 0, 2 * math.Pi, 30},
		{"descending", 5, -5, 11},
		{"odd count", 0, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StepRange(tt.min, tt.max, tt.steps)
			if err != nil {
				t.Fatalf("StepRange() = %v", err)
			}
			if len(got) != tt.steps {
				t.Fatalf("len(StepRange()) = %d, want %d", len(got), tt.steps)
			}
			if got[0] != tt.min {
				t.Errorf("first = %v, want %v", got[0], tt.min)
			}
			if got[len(got)-1] != tt.max {
				t.Errorf("last = %v, want %v", got[len(got)-1], tt.max)
			}
			inc := (tt.max - tt.min) / float64(tt.steps-1)
			for i := 1; i < len(got); i++ {
				if d := got[i] - got[i-1]; math.Abs(d-inc) > 1e-9 {
					t.Errorf("spacing[%d] = %v, want %v", i, d, inc)
				}
			}
		})
	}
}

func TestStepRangeTooFewSteps(t *testing.T) {
	for _, steps := range []int{-1, 0, 1} {
		if _, err := StepRange(0, 1, steps); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("StepRange(0, 1, %d) error = %v, want ErrInvalidShape", steps, err)
		}
	}
}

func TestCircleIsClosedLoop(t *testing.T) {
	for _, n := range []int{3, 4, 25, 30} {
		m := mustMatrix(t)(Circle(10, 20, 5, 7, n))
		if m.Kind() != EdgeKind {
			t.Fatalf("Kind() = %v, want edge", m.Kind())
		}
		if m.Count() != n {
			t.Fatalf("Circle(%d).Count() = %d, want %d", n, m.Count(), n)
		}
		var edges []Edge
		for e := range m.Edges() {
			edges = append(edges, e)
		}
		for i, e := range edges {
			next := edges[(i+1)%n]
			if e[1] != next[0] {
				t.Errorf("n=%d: edge %d ends at %v, edge %d starts at %v", n, i, e[1], (i+1)%n, next[0])
			}
			for _, p := range e {
				if r := math.Hypot(p.X()-10, p.Y()-20); math.Abs(r-7) > 1e-9 {
					t.Errorf("n=%d: radius = %v, want 7", n, r)
				}
				if p.Z() != 5 {
					t.Errorf("n=%d: z = %v, want 5", n, p.Z())
				}
			}
		}
	}
}

func TestRegularPolygon(t *testing.T) {
	m := mustMatrix(t)(RegularPolygon(0, 0, 1, 4))
	want := []Point{
		Pt(1, 0, 0), Pt(0, 1, 0),
		Pt(0, 1, 0), Pt(-1, 0, 0),
		Pt(-1, 0, 0), Pt(0, -1, 0),
		Pt(0, -1, 0), Pt(1, 0, 0),
	}
	if diff := cmp.Diff(want, m.Points(), approx); diff != "" {
		t.Errorf("RegularPolygon() mismatch (-want +got):\n%s", diff)
	}
	if _, err := RegularPolygon(0, 0, 1, 2); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("RegularPolygon(sides=2) error = %v, want ErrInvalidShape", err)
	}
}

func TestCurvesHitEndpoints(t *testing.T) {
	p0, p1 := Pt(0, 0, 0), Pt(100, 50, 10)
	tests := []struct {
		name  string
		build func(steps int) (Matrix, error)
	}{
		{"hermite", func(steps int) (Matrix, error) {
			return Hermite(p0, V3(50, 100, 0), p1, V3(50, -100, 0), steps)
		}},
		{"bezier", func(steps int) (Matrix, error) {
			return Bezier(p0, Pt(20, 80, 0), Pt(80, 80, 5), p1, steps)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t)(tt.build(20))
			if m.Count() != 19 {
				t.Fatalf("Count() = %d, want 19", m.Count())
			}
			pts := m.Points()
			if !pts[0].Approx(p0, 1e-9) {
				t.Errorf("start = %v, want %v", pts[0], p0)
			}
			if !pts[len(pts)-1].Approx(p1, 1e-9) {
				t.Errorf("end = %v, want %v", pts[len(pts)-1], p1)
			}
			for i := 1; i+1 < len(pts); i += 2 {
				if pts[i] != pts[i+1] {
					t.Errorf("edge %d ends at %v but next starts at %v", i/2, pts[i], pts[i+1])
				}
			}
			if _, err := tt.build(1); !errors.Is(err, ErrInvalidShape) {
				t.Errorf("steps=1 error = %v, want ErrInvalidShape", err)
			}
		})
	}
}

func TestHermiteStraightLine(t *testing.T) {
	// Tangents equal to the chord give uniform motion along it.
	m := mustMatrix(t)(Hermite(Pt(0, 0, 0), V3(10, 0, 0), Pt(10, 0, 0), V3(10, 0, 0), 11))
	pts := m.Points()
	for i, want := range []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9} {
		if got := pts[2*i].X(); math.Abs(got-want) > 1e-9 {
			t.Errorf("x[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestBezierMidpoint(t *testing.T) {
	m := mustMatrix(t)(Bezier(Pt(0, 0, 0), Pt(0, 4, 0), Pt(4, 4, 0), Pt(4, 0, 0), 3))
	mid := m.At(1)
	if !mid.Approx(Pt(2, 3, 0), 1e-9) {
		t.Errorf("B(0.5) = %v, want (2,3,0)", mid)
	}
}

func TestBox(t *testing.T) {
	if got := BoxPoints(0, 0, 0, 1, 2, 3).Len(); got != 8 {
		t.Errorf("BoxPoints().Len() = %d, want 8", got)
	}
	if got := BoxEdges(0, 0, 0, 1, 2, 3).Count(); got != 12 {
		t.Errorf("BoxEdges().Count() = %d, want 12", got)
	}
	box := Box(0, 0, 0, 1, 2, 3)
	if box.Kind() != PolygonKind || box.Count() != 12 {
		t.Fatalf("Box() = %s with %d triangles, want 12 polygons", box.Kind(), box.Count())
	}
	assertClosed(t, BoxMesh(0, 0, 0, 1, 2, 3))

	flat := mustMatrix(t)(BoxMesh(0, 0, 0, 1, 2, 3).Polygons())
	if diff := cmp.Diff(flat.Points(), box.Points()); diff != "" {
		t.Errorf("Box() differs from BoxMesh().Polygons() (-want +got):\n%s", diff)
	}
}

func TestBoxFacesPointOutward(t *testing.T) {
	center := Pt(5, 10, 15)
	for tri := range Box(0, 0, 0, 10, 20, 30).Triangles() {
		outward := tri.Normal().Mul(-1)
		if d := outward.Dot(Between(center, tri[0])); d <= 0 {
			t.Errorf("triangle %v faces inward (dot = %v)", tri, d)
		}
	}
}

func TestBoxCulling(t *testing.T) {
	view := V3(0, 0, 1)
	tests := []struct {
		name string
		tr   Transform
		want int
	}{
		{"axis aligned", Identity(), 2},
		{"general position", Identity().RotateX(30, Degrees).RotateY(45, Degrees), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := Box(-1, -1, -1, 2, 2, 2).Apply(tt.tr)
			kept := mustMatrix(t)(box.CullFaces(view))
			if kept.Count() != tt.want {
				t.Errorf("CullFaces() kept %d triangles, want %d", kept.Count(), tt.want)
			}
			for tri := range kept.Triangles() {
				if tri.Normal().Mul(-1).Dot(view) <= 0 {
					t.Errorf("kept triangle %v faces away from the viewer", tri)
				}
			}
		})
	}
}

func TestSphereMesh(t *testing.T) {
	for _, g := range [][2]int{{4, 3}, {6, 5}, {30, 30}, {8, 4}} {
		mesh, err := SphereMesh(1, 2, 3, 10, g[0], g[1])
		if err != nil {
			t.Fatalf("SphereMesh(%v) = %v", g, err)
		}
		if want := 2 * g[0] * g[1]; mesh.Len() != want {
			t.Errorf("SphereMesh(%v).Len() = %d, want %d", g, mesh.Len(), want)
		}
		assertClosed(t, mesh)
		for _, v := range mesh.Vertices {
			if r := Between(Pt(1, 2, 3), v).Magnitude(); math.Abs(r-10) > 1e-9 {
				t.Errorf("vertex %v at radius %v, want 10", v, r)
			}
		}
		assertOutward(t, mesh, func(Point) Point { return Pt(1, 2, 3) })
	}
}

func TestSphereMeshOddThetaSteps(t *testing.T) {
	// An odd count leaves no vertex row at theta == pi; the column either
	// side of it closes the cap.
	for _, g := range [][2]int{{3, 3}, {5, 4}, {7, 3}, {15, 15}, {31, 30}} {
		mesh, err := SphereMesh(1, 2, 3, 10, g[0], g[1])
		if err != nil {
			t.Fatalf("SphereMesh(%v) = %v", g, err)
		}
		if want := 2 * g[0] * g[1]; mesh.Len() != want {
			t.Errorf("SphereMesh(%v).Len() = %d, want %d", g, mesh.Len(), want)
		}
		assertClosed(t, mesh)
		assertOutward(t, mesh, func(Point) Point { return Pt(1, 2, 3) })
	}
}

func TestSphereMeshInvalidSteps(t *testing.T) {
	for _, g := range [][2]int{{2, 4}, {4, 2}, {2, 3}, {0, 0}} {
		if _, err := SphereMesh(0, 0, 0, 1, g[0], g[1]); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("SphereMesh(%v) error = %v, want ErrInvalidShape", g, err)
		}
	}
}

func TestTorusMesh(t *testing.T) {
	for _, g := range [][2]int{{3, 3}, {5, 7}, {30, 30}} {
		mesh, err := TorusMesh(0, 0, 0, 3, 10, g[0], g[1])
		if err != nil {
			t.Fatalf("TorusMesh(%v) = %v", g, err)
		}
		if want := 2 * g[0] * g[1]; mesh.Len() != want {
			t.Errorf("TorusMesh(%v).Len() = %d, want %d", g, mesh.Len(), want)
		}
		assertClosed(t, mesh)
		assertOriented(t, mesh)
	}
	if _, err := TorusMesh(0, 0, 0, 1, 2, 2, 3); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("TorusMesh(2x3) error = %v, want ErrInvalidShape", err)
	}
}

func TestTorusFacesPointOutward(t *testing.T) {
	mesh, err := TorusMesh(0, 0, 0, 3, 10, 30, 30)
	if err != nil {
		t.Fatal(err)
	}
	// Nearest point on the ring through the tube centres.
	ring := func(c Point) Point {
		phi := math.Atan2(c.Z(), c.Y())
		return Pt(0, 10*math.Cos(phi), 10*math.Sin(phi))
	}
	assertOutward(t, mesh, ring)
}

func TestSolidPoints(t *testing.T) {
	sp := mustMatrix(t)(SpherePoints(0, 0, 0, 1, 4, 3))
	if sp.Kind() != PointKind || sp.Len() != 12 {
		t.Errorf("SpherePoints() = %s with %d rows, want 12 points", sp.Kind(), sp.Len())
	}
	tp := mustMatrix(t)(TorusPoints(0, 0, 0, 1, 2, 3, 5))
	if tp.Kind() != PointKind || tp.Len() != 15 {
		t.Errorf("TorusPoints() = %s with %d rows, want 15 points", tp.Kind(), tp.Len())
	}
}

func TestEdgesFromPoints(t *testing.T) {
	pts := BoxPoints(0, 0, 0, 1, 1, 1)
	edges := mustMatrix(t)(EdgesFromPoints(pts))
	if edges.Count() != pts.Len() {
		t.Fatalf("Count() = %d, want %d", edges.Count(), pts.Len())
	}
	for e := range edges.Edges() {
		if e[0] != e[1] {
			t.Errorf("edge %v is not zero length", e)
		}
	}
	if _, err := EdgesFromPoints(edges); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("EdgesFromPoints(edge matrix) error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestMeshPolygonsBadIndex(t *testing.T) {
	mesh := Mesh{Vertices: []Point{Pt(0, 0, 0)}, Faces: [][3]int{{0, 0, 1}}}
	if _, err := mesh.Polygons(); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Polygons() error = %v, want ErrInvalidShape", err)
	}
}

// assertClosed checks that every undirected edge is shared by exactly two
// faces.
func assertClosed(t *testing.T, mesh Mesh) {
	t.Helper()
	shared := map[[2]int]int{}
	for _, f := range mesh.Faces {
		for k := range 3 {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			shared[[2]int{a, b}]++
		}
	}
	for e, n := range shared {
		if n != 2 {
			t.Errorf("edge %v shared by %d faces, want 2", e, n)
		}
	}
}

// assertOriented checks that every directed edge occurs once.
func assertOriented(t *testing.T, mesh Mesh) {
	t.Helper()
	seen := map[[2]int]int{}
	for _, f := range mesh.Faces {
		for k := range 3 {
			seen[[2]int{f[k], f[(k+1)%3]}]++
		}
	}
	for e, n := range seen {
		if n != 1 {
			t.Errorf("directed edge %v occurs %d times, want 1", e, n)
		}
	}
}

// assertOutward checks that every non-degenerate face turns its outward
// normal away from the nearest interior point.
func assertOutward(t *testing.T, mesh Mesh, inside func(centroid Point) Point) {
	t.Helper()
	for _, f := range mesh.Faces {
		tri := Triangle{mesh.Vertices[f[0]], mesh.Vertices[f[1]], mesh.Vertices[f[2]]}
		outward := tri.Normal().Mul(-1)
		if outward.MagnitudeSquared() < 1e-12 {
			continue
		}
		c := Pt(
			(tri[0].X()+tri[1].X()+tri[2].X())/3,
			(tri[0].Y()+tri[1].Y()+tri[2].Y())/3,
			(tri[0].Z()+tri[1].Z()+tri[2].Z())/3,
		)
		if d := outward.Dot(Between(inside(c), c)); d <= 0 {
			t.Errorf("face %v points inward (dot = %v)", f, d)
		}
	}
}
