package gg3d

import (
	"fmt"
	"iter"
	"math"
)

// Kind tags the shape constraint of a Matrix.
type Kind uint8

const (
	// PointKind holds any number of points.
	PointKind Kind = iota
	// EdgeKind holds consecutive point pairs, one segment each.
	EdgeKind
	// PolygonKind holds consecutive point triples, one triangle each.
	PolygonKind
	// TransformKind holds exactly four rows of an affine map.
	TransformKind
)

// kindOps is the per-kind operation table.
type kindOps struct {
	name     string
	group    int  // points per primitive
	fixed    int  // exact row count, 0 for any multiple of group
	additive bool // whether points may be appended or concatenated
	homog    bool // whether rows must have w == 1
}

var kinds = [...]kindOps{
	PointKind:     {name: "point", group: 1, additive: true, homog: true},
	EdgeKind:      {name: "edge", group: 2, additive: true, homog: true},
	PolygonKind:   {name: "polygon", group: 3, additive: true, homog: true},
	TransformKind: {name: "transformation", group: 4, fixed: 4},
}

func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) ops() kindOps {
	return kinds[k]
}

// check validates a row count and the homogeneous coordinate of each row.
func (k Kind) check(points []Point) error {
	ops := k.ops()
	n := len(points)
	if ops.fixed != 0 && n != ops.fixed {
		return fmt.Errorf("%w: %s matrix needs %d rows, got %d", ErrInvalidShape, ops.name, ops.fixed, n)
	}
	if n%ops.group != 0 {
		return fmt.Errorf("%w: %s matrix needs a multiple of %d points, got %d", ErrInvalidShape, ops.name, ops.group, n)
	}
	if ops.homog {
		for i, p := range points {
			if !p.valid() {
				return fmt.Errorf("%w: point %d %v has w != 1", ErrInvalidShape, i, p)
			}
		}
	}
	return nil
}

// Matrix is an ordered sequence of homogeneous rows tagged with a Kind.
// All operations except the Add* builders return new matrices and never
// share storage with their operands.
type Matrix struct {
	kind   Kind
	points []Point
}

// NewMatrix builds a matrix of the given kind from raw rows. Rows of point,
// edge and polygon matrices are sanitized like NewPoint; rows of a
// transformation matrix must have exactly four entries.
func NewMatrix(kind Kind, rows ...[]float64) (Matrix, error) {
	points := make([]Point, len(rows))
	for i, row := range rows {
		if kind == TransformKind {
			if len(row) != 4 {
				return Matrix{}, fmt.Errorf("%w: transformation row %d has %d entries", ErrInvalidShape, i, len(row))
			}
			points[i] = Point(row)
			continue
		}
		p, err := NewPoint(row...)
		if err != nil {
			return Matrix{}, fmt.Errorf("row %d: %w", i, err)
		}
		points[i] = p
	}
	return fromPoints(kind, points)
}

// NewPointMatrix creates a point matrix.
func NewPointMatrix(points ...Point) (Matrix, error) {
	return fromPoints(PointKind, clonePoints(points))
}

// NewEdgeMatrix creates an edge matrix; len(points) must be even.
func NewEdgeMatrix(points ...Point) (Matrix, error) {
	return fromPoints(EdgeKind, clonePoints(points))
}

// NewPolygonMatrix creates a polygon matrix; len(points) must be a multiple
// of three.
func NewPolygonMatrix(points ...Point) (Matrix, error) {
	return fromPoints(PolygonKind, clonePoints(points))
}

// fromPoints takes ownership of points.
func fromPoints(kind Kind, points []Point) (Matrix, error) {
	if int(kind) >= len(kinds) {
		return Matrix{}, fmt.Errorf("%w: unknown matrix kind %d", ErrInvalidShape, kind)
	}
	if err := kind.check(points); err != nil {
		return Matrix{}, err
	}
	return Matrix{kind: kind, points: points}, nil
}

func clonePoints(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

// Kind returns the shape tag of the matrix.
func (m Matrix) Kind() Kind {
	return m.kind
}

// Len returns the number of rows.
func (m Matrix) Len() int {
	return len(m.points)
}

// Count returns the number of primitives: points, edges, triangles, or 1
// for a transformation matrix.
func (m Matrix) Count() int {
	return len(m.points) / m.kind.ops().group
}

// At returns row i.
func (m Matrix) At(i int) Point {
	return m.points[i]
}

// Points returns a copy of the rows.
func (m Matrix) Points() []Point {
	return clonePoints(m.points)
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	return Matrix{kind: m.kind, points: clonePoints(m.points)}
}

// All yields every row in order.
func (m Matrix) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range m.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Edges yields consecutive point pairs. It yields nothing unless m is an
// edge matrix.
func (m Matrix) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if m.kind != EdgeKind {
			return
		}
		for i := 0; i+1 < len(m.points); i += 2 {
			if !yield(Edge{m.points[i], m.points[i+1]}) {
				return
			}
		}
	}
}

// Triangles yields consecutive point triples. It yields nothing unless m is
// a polygon matrix.
func (m Matrix) Triangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		if m.kind != PolygonKind {
			return
		}
		for i := 0; i+2 < len(m.points); i += 3 {
			if !yield(Triangle{m.points[i], m.points[i+1], m.points[i+2]}) {
				return
			}
		}
	}
}

// Add concatenates the rows of other onto m. A point matrix accepts rows of
// any additive kind; edge and polygon matrices only combine with their own
// kind. Transformation matrices cannot be added.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.kind.ops().additive || !other.kind.ops().additive {
		return Matrix{}, fmt.Errorf("%w: cannot add %s matrix to %s matrix", ErrUnsupportedOperation, other.kind, m.kind)
	}
	if m.kind != PointKind && m.kind != other.kind {
		return Matrix{}, fmt.Errorf("%w: cannot combine %s matrix with %s matrix", ErrUnsupportedOperation, m.kind, other.kind)
	}
	points := make([]Point, 0, len(m.points)+len(other.points))
	points = append(points, m.points...)
	points = append(points, other.points...)
	return fromPoints(m.kind, points)
}

// AddPoint appends one point to a point matrix.
func (m *Matrix) AddPoint(p Point) error {
	return m.append(PointKind, p)
}

// AddEdge appends one segment to an edge matrix.
func (m *Matrix) AddEdge(p1, p2 Point) error {
	return m.append(EdgeKind, p1, p2)
}

// AddPolygon appends one triangle to a polygon matrix.
func (m *Matrix) AddPolygon(p1, p2, p3 Point) error {
	return m.append(PolygonKind, p1, p2, p3)
}

func (m *Matrix) append(want Kind, points ...Point) error {
	if m.kind != want {
		return fmt.Errorf("%w: cannot add %s to a %s matrix", ErrUnsupportedOperation, want, m.kind)
	}
	for _, p := range points {
		if !p.valid() {
			return fmt.Errorf("%w: point %v has w != 1", ErrInvalidShape, p)
		}
	}
	// Full slice expression forces a fresh array so copies of m made by
	// assignment never observe the append.
	n := len(m.points)
	m.points = append(m.points[:n:n], points...)
	return nil
}

// Multiply returns m * other under the row-vector convention. other must
// have four rows. The result keeps the kind of m.
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	if len(other.points) != 4 {
		return Matrix{}, fmt.Errorf("%w: %dx4 times %dx4", ErrDimensionMismatch, len(m.points), len(other.points))
	}
	var t Transform
	for i := range t {
		t[i] = other.points[i]
	}
	return m.Apply(t), nil
}

// Apply returns every row of m multiplied by t. The result keeps the kind
// of m.
func (m Matrix) Apply(t Transform) Matrix {
	out := make([]Point, len(m.points))
	for i, p := range m.points {
		out[i] = t.rowTimes(p)
	}
	return Matrix{kind: m.kind, points: out}
}

// Rounded returns a copy with every coordinate rounded half away from zero.
// The kind is preserved.
func (m Matrix) Rounded() Matrix {
	out := make([]Point, len(m.points))
	for i, p := range m.points {
		out[i] = p.Rounded()
	}
	return Matrix{kind: m.kind, points: out}
}

// Transform converts a transformation matrix back into a Transform.
func (m Matrix) Transform() (Transform, error) {
	if m.kind != TransformKind {
		return Transform{}, fmt.Errorf("%w: %s matrix is not a transformation", ErrUnsupportedOperation, m.kind)
	}
	var t Transform
	for i := range t {
		t[i] = m.points[i]
	}
	return t, nil
}

// CullFaces returns the triangles of a polygon matrix that face the viewer.
//
// view points from the scene toward the viewer. For each triangle the normal
// is cross(v2-v0, v1-v0) and the triangle is kept iff dot(normal, view) < 0.
// Because generated faces wind counter-clockwise seen from outside, that
// normal points inward, so kept faces are those whose outward side looks at
// the viewer. Edge-on faces (dot == 0) are dropped.
func (m Matrix) CullFaces(view Vector) (Matrix, error) {
	if m.kind != PolygonKind {
		return Matrix{}, fmt.Errorf("%w: cannot cull faces of a %s matrix", ErrUnsupportedOperation, m.kind)
	}
	var kept []Point
	for tri := range m.Triangles() {
		if tri.Normal().Dot(view) < 0 {
			kept = append(kept, tri[:]...)
		}
	}
	return Matrix{kind: PolygonKind, points: kept}, nil
}

// Approx returns true if both matrices have the same kind and shape and all
// entries agree within epsilon.
func (m Matrix) Approx(other Matrix, epsilon float64) bool {
	if m.kind != other.kind || len(m.points) != len(other.points) {
		return false
	}
	for i := range m.points {
		if !m.points[i].Approx(other.points[i], epsilon) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("%s%v", m.kind, m.points)
}

// isFinite reports whether every coordinate is a finite number.
func (m Matrix) isFinite() bool {
	for _, p := range m.points {
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
