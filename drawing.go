package gg3d

import (
	"fmt"
	"runtime"

	"github.com/gogpu/gg3d/internal/parallel"
)

// PolygonMode selects how polygon matrices are rasterized.
type PolygonMode uint8

const (
	// PolygonLine draws each triangle as three edges.
	PolygonLine PolygonMode = iota
	// PolygonFill fills each triangle scanline by scanline at its minimum
	// vertex depth.
	PolygonFill
	// PolygonPoint draws only the vertices.
	PolygonPoint
)

func (m PolygonMode) String() string {
	switch m {
	case PolygonLine:
		return "line"
	case PolygonFill:
		return "fill"
	case PolygonPoint:
		return "point"
	}
	return fmt.Sprintf("PolygonMode(%d)", uint8(m))
}

// Drawing renders 3D geometry into a Picture.
//
// It owns a picture, a depth buffer of the same size and a stack of
// transforms. Every draw call transforms its geometry by the top of the
// stack, rounds it to pixel coordinates and rasterizes it with depth
// testing. A Drawing is not safe for concurrent use.
type Drawing struct {
	picture *Picture
	depth   *DepthBuffer
	stack   []Transform
	opts    drawingOptions
	dropped int
}

// NewDrawing creates a drawing of the given size with an identity transform
// on the stack.
func NewDrawing(width, height int, opts ...DrawingOption) *Drawing {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Drawing{
		picture: NewPicture(width, height),
		depth:   NewDepthBuffer(width, height),
		stack:   []Transform{Identity()},
		opts:    o,
	}
	d.picture.Fill(o.background)
	return d
}

// Width returns the width of the drawing.
func (d *Drawing) Width() int {
	return d.picture.width
}

// Height returns the height of the drawing.
func (d *Drawing) Height() int {
	return d.picture.height
}

// --- Transform stack ---

func (d *Drawing) top() *Transform {
	return &d.stack[len(d.stack)-1]
}

// Push duplicates the current transform onto the stack.
func (d *Drawing) Push() {
	d.stack = append(d.stack, *d.top())
}

// Pop discards the current transform. The bottom transform cannot be
// popped; Pop returns ErrStackUnderflow and leaves the stack unchanged.
func (d *Drawing) Pop() error {
	if len(d.stack) == 1 {
		return ErrStackUnderflow
	}
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// StackDepth returns the number of transforms on the stack.
func (d *Drawing) StackDepth() int {
	return len(d.stack)
}

// Transform returns the current transform.
func (d *Drawing) Transform() Transform {
	return *d.top()
}

// Identity replaces the current transform with the identity.
func (d *Drawing) Identity() {
	*d.top() = Identity()
}

// Apply right-multiplies the current transform by t, so t acts on geometry
// after everything already on the stack. The builder methods below issue
// their factor the other way round.
func (d *Drawing) Apply(t Transform) {
	*d.top() = d.top().Mul(t)
}

// RotateX issues a rotation about the x axis.
func (d *Drawing) RotateX(theta float64, unit AngleUnit) {
	*d.top() = d.top().RotateX(theta, unit)
}

// RotateY issues a rotation about the y axis.
func (d *Drawing) RotateY(theta float64, unit AngleUnit) {
	*d.top() = d.top().RotateY(theta, unit)
}

// RotateZ issues a rotation about the z axis.
func (d *Drawing) RotateZ(theta float64, unit AngleUnit) {
	*d.top() = d.top().RotateZ(theta, unit)
}

// Rotate issues a rotation about axis.
func (d *Drawing) Rotate(axis Axis, theta float64, unit AngleUnit) error {
	r, err := Rotation(axis, theta, unit)
	if err != nil {
		return err
	}
	d.Apply(r)
	return nil
}

// RotateAbout issues a rotation about the line through center parallel to
// axis.
func (d *Drawing) RotateAbout(axis Axis, theta float64, unit AngleUnit, center Point) error {
	r, err := RotationAbout(axis, theta, unit, center)
	if err != nil {
		return err
	}
	d.Apply(r)
	return nil
}

// Translate issues a translation.
func (d *Drawing) Translate(x, y, z float64) {
	*d.top() = d.top().Translate(x, y, z)
}

// Scale issues a scale about the origin.
func (d *Drawing) Scale(x, y, z float64) {
	*d.top() = d.top().Scale(x, y, z)
}

// --- Settings ---

// SetViewVector enables back-face culling against v.
func (d *Drawing) SetViewVector(v Vector) {
	d.opts.view = v
	d.opts.hasView = true
}

// ClearViewVector disables back-face culling.
func (d *Drawing) ClearViewVector() {
	d.opts.view = Vector{}
	d.opts.hasView = false
}

// ViewVector returns the culling view vector and whether culling is on.
func (d *Drawing) ViewVector() (Vector, bool) {
	return d.opts.view, d.opts.hasView
}

// SetPolygonMode changes how polygons are rasterized.
func (d *Drawing) SetPolygonMode(m PolygonMode) {
	d.opts.mode = m
}

// PolygonMode returns the current polygon mode.
func (d *Drawing) PolygonMode() PolygonMode {
	return d.opts.mode
}

// --- Output ---

// Clear resets the picture to the background colour and the depth buffer to
// negative infinity. The transform stack is kept.
func (d *Drawing) Clear() {
	d.picture.Fill(d.opts.background)
	d.depth.Reset()
	d.dropped = 0
}

// Picture returns a copy of the current picture.
func (d *Drawing) Picture() *Picture {
	return d.picture.Clone()
}

// DepthAt returns the depth stored for (x, y).
func (d *Drawing) DepthAt(x, y int) float64 {
	return d.depth.At(x, y)
}

// Dropped returns the number of out-of-bounds pixel writes discarded since
// creation or the last Clear.
func (d *Drawing) Dropped() int {
	return d.dropped
}

// Generate hands the picture to s as row-major RGB rows.
func (d *Drawing) Generate(s Sink) error {
	return s.Consume(d.picture.width, d.picture.height, d.picture.Rows())
}

// --- Drawing ---

// DrawPoint draws a single point.
func (d *Drawing) DrawPoint(p Point, c Color) error {
	m, err := NewPointMatrix(p)
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

// DrawLine draws the segment from p0 to p1.
func (d *Drawing) DrawLine(p0, p1 Point, c Color) error {
	m, err := NewEdgeMatrix(p0, p1)
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

// DrawPolygon draws one triangle.
func (d *Drawing) DrawPolygon(p0, p1, p2 Point, c Color) error {
	m, err := NewPolygonMatrix(p0, p1, p2)
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

// DrawPoints draws every row of a point matrix.
func (d *Drawing) DrawPoints(m Matrix, c Color) error {
	return d.drawKind(PointKind, m, c)
}

// DrawEdges draws every segment of an edge matrix.
func (d *Drawing) DrawEdges(m Matrix, c Color) error {
	return d.drawKind(EdgeKind, m, c)
}

// DrawPolygons draws every triangle of a polygon matrix in the current
// polygon mode, culling back faces when a view vector is set.
func (d *Drawing) DrawPolygons(m Matrix, c Color) error {
	return d.drawKind(PolygonKind, m, c)
}

func (d *Drawing) drawKind(want Kind, m Matrix, c Color) error {
	if m.kind != want {
		return fmt.Errorf("%w: expected %s matrix, got %s", ErrUnsupportedOperation, want, m.kind)
	}
	return d.Draw(m, c)
}

// DrawCircle draws a circle in the plane z=cz. Zero steps means DefaultSteps.
func (d *Drawing) DrawCircle(cx, cy, cz, r float64, steps int, c Color) error {
	m, err := Circle(cx, cy, cz, r, orDefault(steps))
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

// DrawHermite draws a Hermite curve. Zero steps means DefaultSteps.
func (d *Drawing) DrawHermite(p0 Point, r0 Vector, p1 Point, r1 Vector, steps int, c Color) error {
	m, err := Hermite(p0, r0, p1, r1, orDefault(steps))
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

// DrawBezier draws a cubic Bezier curve. Zero steps means DefaultSteps.
func (d *Drawing) DrawBezier(p0, c0, c1, p1 Point, steps int, c Color) error {
	m, err := Bezier(p0, c0, c1, p1, orDefault(steps))
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

// DrawBox draws the box with origin (x, y, z) and extent (w, h, depth).
func (d *Drawing) DrawBox(x, y, z, w, h, depth float64, c Color) error {
	return d.Draw(Box(x, y, z, w, h, depth), c)
}

// DrawSphere draws a sphere sampled on a steps x steps grid. Zero steps
// means DefaultSteps.
func (d *Drawing) DrawSphere(cx, cy, cz, r float64, steps int, c Color) error {
	steps = orDefault(steps)
	m, err := Sphere(cx, cy, cz, r, steps, steps)
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

// DrawTorus draws a torus sampled on a steps x steps grid. Zero steps means
// DefaultSteps.
func (d *Drawing) DrawTorus(cx, cy, cz, r1, r2 float64, steps int, c Color) error {
	steps = orDefault(steps)
	m, err := Torus(cx, cy, cz, r1, r2, steps, steps)
	if err != nil {
		return err
	}
	return d.Draw(m, c)
}

func orDefault(steps int) int {
	if steps == 0 {
		return DefaultSteps
	}
	return steps
}

// Draw transforms m by the current transform and rasterizes it according to
// its kind. Invalid geometry is rejected before any pixel is written.
func (d *Drawing) Draw(m Matrix, c Color) error {
	screen, err := d.project(m)
	if err != nil {
		return err
	}
	return d.rasterize(screen, c)
}

// maxScreen bounds rounded screen coordinates so that rasterization
// arithmetic stays within int64.
const maxScreen = 1 << 29

// project validates m and maps it into screen space. Polygons are culled
// before rounding. Every vertex of a primitive is one of its pixels, so in
// strict mode checking the vertices rejects the draw before any write.
func (d *Drawing) project(m Matrix) (Matrix, error) {
	if !m.kind.ops().additive {
		return Matrix{}, fmt.Errorf("%w: cannot draw a %s matrix", ErrUnsupportedOperation, m.kind)
	}
	if !m.isFinite() {
		return Matrix{}, fmt.Errorf("%w: non-finite coordinates", ErrInvalidShape)
	}
	screen := m.Apply(*d.top())
	if !screen.isFinite() {
		return Matrix{}, fmt.Errorf("%w: transform produced non-finite coordinates", ErrInvalidShape)
	}
	if screen.kind == PolygonKind && d.opts.hasView {
		culled, err := screen.CullFaces(d.opts.view)
		if err != nil {
			return Matrix{}, err
		}
		Logger().Debug("cull faces", "triangles", screen.Count(), "culled", screen.Count()-culled.Count())
		screen = culled
	}
	screen = screen.Rounded()
	for p := range screen.All() {
		if abs(p.X()) > maxScreen || abs(p.Y()) > maxScreen {
			return Matrix{}, fmt.Errorf("%w: screen position (%v, %v) beyond +-%d", ErrInvalidShape, p.X(), p.Y(), maxScreen)
		}
		if d.opts.strict && !d.picture.Contains(int(p.X()), int(p.Y())) {
			return Matrix{}, fmt.Errorf("%w: pixel (%v, %v) outside %dx%d drawing", ErrOutOfBounds, p.X(), p.Y(), d.picture.width, d.picture.height)
		}
	}
	return screen, nil
}

func (d *Drawing) rasterize(screen Matrix, c Color) error {
	before := d.dropped
	var err error
	switch screen.kind {
	case PointKind:
		err = d.rasterPoints(screen, c)
		Logger().Debug("draw points", "points", screen.Count(), "dropped", d.dropped-before)
	case EdgeKind:
		err = d.rasterEdges(screen, c)
		Logger().Debug("draw edges", "edges", screen.Count(), "dropped", d.dropped-before)
	case PolygonKind:
		err = d.rasterPolygons(screen, c)
		Logger().Debug("draw polygons", "triangles", screen.Count(), "mode", d.opts.mode, "dropped", d.dropped-before)
	}
	return err
}

// plot returns a depth-tested pixel writer for depth z. Callers clip to
// the picture first.
func (d *Drawing) plot(z float64, c Color) plotFunc {
	return func(x, y int) error {
		if d.depth.TestAndSet(x, y, z) {
			d.picture.pix[y*d.picture.width+x] = c
		}
		return nil
	}
}

func (d *Drawing) rasterPoint(p Point, c Color) error {
	x, y := int(p.X()), int(p.Y())
	if !d.picture.Contains(x, y) {
		d.dropped++
		return nil
	}
	return d.plot(p.Z(), c)(x, y)
}

func (d *Drawing) rasterPoints(screen Matrix, c Color) error {
	for p := range screen.All() {
		if err := d.rasterPoint(p, c); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drawing) rasterEdge(p0, p1 Point, c Color) error {
	n, err := rasterLine(int(p0.X()), int(p0.Y()), int(p1.X()), int(p1.Y()), d.picture.Bounds(), d.plot(min(p0.Z(), p1.Z()), c))
	d.dropped += n
	return err
}

func (d *Drawing) rasterEdges(screen Matrix, c Color) error {
	for e := range screen.Edges() {
		if err := d.rasterEdge(e[0], e[1], c); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drawing) rasterPolygons(screen Matrix, c Color) error {
	for tri := range screen.Triangles() {
		var err error
		switch d.opts.mode {
		case PolygonFill:
			var n int
			n, err = rasterTriangle(tri, d.picture.Bounds(), d.plot(tri.MinZ(), c))
			d.dropped += n
		case PolygonPoint:
			for _, p := range tri {
				if err = d.rasterPoint(p, c); err != nil {
					break
				}
			}
		default:
			for k := range 3 {
				if err = d.rasterEdge(tri[k], tri[(k+1)%3], c); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// --- Batches ---

// Geometry produces object-space geometry for a batch.
type Geometry func() (Matrix, error)

// Primitive pairs a geometry with the colour it is drawn in.
type Primitive struct {
	Geometry Geometry
	Color    Color
}

// DrawBatch tessellates every primitive concurrently, then draws them in
// order with the current transform. If any geometry fails or any result
// cannot be drawn, nothing is drawn and the error of the first such
// primitive is returned.
func (d *Drawing) DrawBatch(prims ...Primitive) error {
	if len(prims) == 0 {
		return nil
	}
	workers := d.opts.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := parallel.NewWorkerPool(min(workers, len(prims)))
	defer pool.Close()

	geoms, err := parallel.Map(pool, len(prims), func(i int) (Matrix, error) {
		if prims[i].Geometry == nil {
			return Matrix{}, fmt.Errorf("%w: primitive %d has no geometry", ErrInvalidShape, i)
		}
		return prims[i].Geometry()
	})
	if err != nil {
		Logger().Warn("batch aborted", "primitives", len(prims), "err", err)
		return err
	}

	screens := make([]Matrix, len(geoms))
	for i, m := range geoms {
		if screens[i], err = d.project(m); err != nil {
			Logger().Warn("batch aborted", "primitives", len(prims), "index", i, "err", err)
			return err
		}
	}
	for i, s := range screens {
		if err := d.rasterize(s, prims[i].Color); err != nil {
			return err
		}
	}
	return nil
}
