package gg3d

import (
	"fmt"
	"math"
)

// DefaultSteps is the sample count used for curves and solids when a draw
// call passes zero steps.
const DefaultSteps = 30

// StepRange returns steps evenly spaced values from min to max inclusive.
// The last value is exactly max.
func StepRange(min, max float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: step range needs at least 2 steps, got %d", ErrInvalidShape, steps)
	}
	inc := (max - min) / float64(steps-1)
	values := make([]float64, steps)
	for i := range steps - 1 {
		values[i] = min + float64(i)*inc
	}
	values[steps-1] = max
	return values, nil
}

// RegularPolygon returns the edges of a regular polygon in the z=0 plane
// inscribed in the circle of radius r around (cx, cy).
func RegularPolygon(cx, cy, r float64, sides int) (Matrix, error) {
	return Circle(cx, cy, 0, r, sides)
}

// Circle returns a closed loop of steps edges approximating the circle of
// radius r around (cx, cy, cz) in the plane z=cz.
func Circle(cx, cy, cz, r float64, steps int) (Matrix, error) {
	if steps < 3 {
		return Matrix{}, fmt.Errorf("%w: circle needs at least 3 sides, got %d", ErrInvalidShape, steps)
	}
	curve := NewCurve(
		func(t float64) float64 { return r*math.Cos(t) + cx },
		func(t float64) float64 { return r*math.Sin(t) + cy },
		func(float64) float64 { return cz },
	)
	vertices := make([]Point, steps)
	for k := range steps {
		vertices[k] = curve.At(2 * math.Pi * float64(k) / float64(steps))
	}
	points := make([]Point, 0, 2*steps)
	for k := range steps {
		points = append(points, vertices[k], vertices[(k+1)%steps])
	}
	return Matrix{kind: EdgeKind, points: points}, nil
}

// hermiteBasis maps the geometry rows [p0, p1, r0, r1] to cubic coefficients.
var hermiteBasis = Transform{
	{2, -2, 1, 1},
	{-3, 3, -2, -1},
	{0, 0, 1, 0},
	{1, 0, 0, 0},
}

// Hermite returns steps-1 edges approximating the cubic Hermite curve from
// p0 to p1 with tangents r0 and r1.
func Hermite(p0 Point, r0 Vector, p1 Point, r1 Vector, steps int) (Matrix, error) {
	geometry := Transform{
		{p0[0], p0[1], p0[2], 1},
		{p1[0], p1[1], p1[2], 1},
		{r0[0], r0[1], r0[2], 0},
		{r1[0], r1[1], r1[2], 0},
	}
	c := hermiteBasis.Mul(geometry)
	axis := func(k int) func(float64) float64 {
		return func(t float64) float64 {
			return ((c[0][k]*t+c[1][k])*t+c[2][k])*t + c[3][k]
		}
	}
	return sweep(NewCurve(axis(0), axis(1), axis(2)), steps)
}

// Bezier returns steps-1 edges approximating the cubic Bezier curve from p0
// to p1 with control points c0 and c1.
func Bezier(p0, c0, c1, p1 Point, steps int) (Matrix, error) {
	axis := func(k int) func(float64) float64 {
		return func(t float64) float64 {
			s := 1 - t
			return s*s*s*p0[k] + 3*s*s*t*c0[k] + 3*s*t*t*c1[k] + t*t*t*p1[k]
		}
	}
	return sweep(NewCurve(axis(0), axis(1), axis(2)), steps)
}

// sweep samples curve over t in [0, 1] and connects consecutive samples.
func sweep(curve Parametric, steps int) (Matrix, error) {
	ts, err := StepRange(0, 1, steps)
	if err != nil {
		return Matrix{}, err
	}
	points := make([]Point, 0, 2*(len(ts)-1))
	prev := curve.At(ts[0])
	for _, t := range ts[1:] {
		next := curve.At(t)
		points = append(points, prev, next)
		prev = next
	}
	return Matrix{kind: EdgeKind, points: points}, nil
}

var (
	boxEdges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	boxFaces = [12][3]int{
		{3, 1, 0}, {3, 2, 1}, // z
		{2, 5, 1}, {2, 6, 5}, // x+w
		{6, 4, 5}, {6, 7, 4}, // z+d
		{7, 0, 4}, {7, 3, 0}, // x
		{7, 2, 3}, {7, 6, 2}, // y+h
		{0, 5, 4}, {0, 1, 5}, // y
	}
)

func boxVertices(x, y, z, w, h, d float64) [8]Point {
	return [8]Point{
		Pt(x, y, z), Pt(x+w, y, z), Pt(x+w, y+h, z), Pt(x, y+h, z),
		Pt(x, y, z+d), Pt(x+w, y, z+d), Pt(x+w, y+h, z+d), Pt(x, y+h, z+d),
	}
}

// BoxPoints returns the 8 corners of the box with origin (x, y, z) and
// extent (w, h, d).
func BoxPoints(x, y, z, w, h, d float64) Matrix {
	v := boxVertices(x, y, z, w, h, d)
	return Matrix{kind: PointKind, points: v[:]}
}

// BoxEdges returns the 12 edges of the box.
func BoxEdges(x, y, z, w, h, d float64) Matrix {
	v := boxVertices(x, y, z, w, h, d)
	points := make([]Point, 0, 2*len(boxEdges))
	for _, e := range boxEdges {
		points = append(points, v[e[0]], v[e[1]])
	}
	return Matrix{kind: EdgeKind, points: points}
}

// BoxMesh returns the box as 12 outward-wound triangles over its 8 corners.
func BoxMesh(x, y, z, w, h, d float64) Mesh {
	v := boxVertices(x, y, z, w, h, d)
	faces := boxFaces
	return Mesh{Vertices: v[:], Faces: faces[:]}
}

// Box returns the 12 triangles of the box as a polygon matrix.
func Box(x, y, z, w, h, d float64) Matrix {
	v := boxVertices(x, y, z, w, h, d)
	points := make([]Point, 0, 3*len(boxFaces))
	for _, f := range boxFaces {
		points = append(points, v[f[0]], v[f[1]], v[f[2]])
	}
	return Matrix{kind: PolygonKind, points: points}
}

// SphereMesh tessellates the sphere of radius r around (cx, cy, cz).
//
// A generating circle in the xy plane, theta over [0, 2pi), is revolved
// about the x axis by phi over [0, pi). Rotating by pi maps theta onto
// 2pi-theta, so the phi seam joins row 0 at the mirrored theta index and
// cells with theta past pi are wound the other way round. With an odd
// thetaSteps the column straddling pi lies flat in the plane of its two
// rows; its triangles are wound to face away from the centre.
// thetaSteps and phiSteps must be at least 3.
func SphereMesh(cx, cy, cz, r float64, thetaSteps, phiSteps int) (Mesh, error) {
	if thetaSteps < 3 {
		return Mesh{}, fmt.Errorf("%w: sphere needs at least 3 theta steps, got %d", ErrInvalidShape, thetaSteps)
	}
	if phiSteps < 3 {
		return Mesh{}, fmt.Errorf("%w: sphere needs at least 3 phi steps, got %d", ErrInvalidShape, phiSteps)
	}
	surface := NewSurface(
		func(theta, _ float64) float64 { return r*math.Cos(theta) + cx },
		func(theta, phi float64) float64 { return r*math.Sin(theta)*math.Cos(phi) + cy },
		func(theta, phi float64) float64 { return r*math.Sin(theta)*math.Sin(phi) + cz },
	)
	g := grid{thetaSteps: thetaSteps, phiSteps: phiSteps}
	vertices := g.sample(surface, 2*math.Pi, math.Pi)
	at := func(i, j int) int {
		i %= thetaSteps
		if j == phiSteps {
			return g.index((thetaSteps-i)%thetaSteps, 0)
		}
		return g.index(i, j)
	}
	center := Pt(cx, cy, cz)
	outward := func(f [3]int) [3]int {
		t := Triangle{vertices[f[0]], vertices[f[1]], vertices[f[2]]}
		if t.Normal().Dot(Between(center, t[0])) > 0 {
			return [3]int{f[0], f[2], f[1]}
		}
		return f
	}
	faces := make([][3]int, 0, 2*thetaSteps*phiSteps)
	for i := range thetaSteps {
		// compare the cell's theta midpoint, (i+0.5)/thetaSteps, against 1/2
		mid := 2*i + 1
		for j := range phiSteps {
			a, b, c, d := at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)
			if mid == thetaSteps {
				faces = append(faces, outward([3]int{a, b, c}), outward([3]int{a, c, d}))
				continue
			}
			faces = quad(faces, a, b, c, d, mid > thetaSteps)
		}
	}
	return Mesh{Vertices: vertices, Faces: faces}, nil
}

// Sphere returns the sphere tessellation as a polygon matrix.
func Sphere(cx, cy, cz, r float64, thetaSteps, phiSteps int) (Matrix, error) {
	mesh, err := SphereMesh(cx, cy, cz, r, thetaSteps, phiSteps)
	if err != nil {
		return Matrix{}, err
	}
	return mesh.Polygons()
}

// SpherePoints returns the sampled sphere vertices as a point matrix.
func SpherePoints(cx, cy, cz, r float64, thetaSteps, phiSteps int) (Matrix, error) {
	mesh, err := SphereMesh(cx, cy, cz, r, thetaSteps, phiSteps)
	if err != nil {
		return Matrix{}, err
	}
	return mesh.Points(), nil
}

// TorusMesh tessellates the torus around (cx, cy, cz) with tube radius r1
// and ring radius r2. The tube circle is revolved about the x axis; both
// parameters run over [0, 2pi) and wrap modularly. Both step counts must be
// at least 3.
func TorusMesh(cx, cy, cz, r1, r2 float64, thetaSteps, phiSteps int) (Mesh, error) {
	if thetaSteps < 3 || phiSteps < 3 {
		return Mesh{}, fmt.Errorf("%w: torus needs at least 3x3 steps, got %dx%d", ErrInvalidShape, thetaSteps, phiSteps)
	}
	surface := NewSurface(
		func(theta, _ float64) float64 { return r1*math.Cos(theta) + cx },
		func(theta, phi float64) float64 { return math.Cos(phi)*(r1*math.Sin(theta)+r2) + cy },
		func(theta, phi float64) float64 { return math.Sin(phi)*(r1*math.Sin(theta)+r2) + cz },
	)
	g := grid{thetaSteps: thetaSteps, phiSteps: phiSteps}
	at := func(i, j int) int {
		return g.index(i%thetaSteps, j%phiSteps)
	}
	faces := make([][3]int, 0, 2*thetaSteps*phiSteps)
	for i := range thetaSteps {
		for j := range phiSteps {
			faces = quad(faces, at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1), false)
		}
	}
	return Mesh{Vertices: g.sample(surface, 2*math.Pi, 2*math.Pi), Faces: faces}, nil
}

// Torus returns the torus tessellation as a polygon matrix.
func Torus(cx, cy, cz, r1, r2 float64, thetaSteps, phiSteps int) (Matrix, error) {
	mesh, err := TorusMesh(cx, cy, cz, r1, r2, thetaSteps, phiSteps)
	if err != nil {
		return Matrix{}, err
	}
	return mesh.Polygons()
}

// TorusPoints returns the sampled torus vertices as a point matrix.
func TorusPoints(cx, cy, cz, r1, r2 float64, thetaSteps, phiSteps int) (Matrix, error) {
	mesh, err := TorusMesh(cx, cy, cz, r1, r2, thetaSteps, phiSteps)
	if err != nil {
		return Matrix{}, err
	}
	return mesh.Points(), nil
}

// EdgesFromPoints turns every point of a point matrix into a zero-length
// edge so a point cloud can be drawn as lines.
func EdgesFromPoints(m Matrix) (Matrix, error) {
	if m.kind != PointKind {
		return Matrix{}, fmt.Errorf("%w: edges from a %s matrix", ErrUnsupportedOperation, m.kind)
	}
	points := make([]Point, 0, 2*len(m.points))
	for _, p := range m.points {
		points = append(points, p, p)
	}
	return Matrix{kind: EdgeKind, points: points}, nil
}
