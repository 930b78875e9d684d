package gg3d

import "fmt"

// Mesh is an indexed triangle mesh. Faces hold three indices into Vertices
// wound counter-clockwise seen from outside.
type Mesh struct {
	Vertices []Point
	Faces    [][3]int
}

// Len returns the number of faces.
func (m Mesh) Len() int {
	return len(m.Faces)
}

// Points returns the vertices as a point matrix.
func (m Mesh) Points() Matrix {
	return Matrix{kind: PointKind, points: clonePoints(m.Vertices)}
}

// Polygons flattens the mesh into a polygon matrix, one triangle per face.
func (m Mesh) Polygons() (Matrix, error) {
	points := make([]Point, 0, 3*len(m.Faces))
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				return Matrix{}, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidShape, i, v, len(m.Vertices))
			}
			points = append(points, m.Vertices[v])
		}
	}
	return fromPoints(PolygonKind, points)
}

// grid indexes vertices sampled on a thetaSteps x phiSteps parameter grid.
type grid struct {
	thetaSteps, phiSteps int
}

func (g grid) index(i, j int) int {
	return i*g.phiSteps + j
}

// sample evaluates surface on the grid, theta over [0, thetaSpan) and phi
// over [0, phiSpan).
func (g grid) sample(surface Parametric, thetaSpan, phiSpan float64) []Point {
	vertices := make([]Point, 0, g.thetaSteps*g.phiSteps)
	for i := range g.thetaSteps {
		theta := thetaSpan * float64(i) / float64(g.thetaSteps)
		for j := range g.phiSteps {
			phi := phiSpan * float64(j) / float64(g.phiSteps)
			vertices = append(vertices, surface.AtUV(theta, phi))
		}
	}
	return vertices
}

// quad appends the two triangles of the cell with corners a=(i,j), b=(i+1,j),
// c=(i+1,j+1), d=(i,j+1). flip reverses the winding.
func quad(faces [][3]int, a, b, c, d int, flip bool) [][3]int {
	if flip {
		return append(faces, [3]int{a, c, b}, [3]int{a, d, c})
	}
	return append(faces, [3]int{a, b, c}, [3]int{a, c, d})
}
