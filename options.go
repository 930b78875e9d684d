package gg3d

// DrawingOption configures a Drawing during creation.
//
// Example:
//
//	d := gg3d.NewDrawing(500, 500,
//		gg3d.WithPolygonMode(gg3d.PolygonFill),
//		gg3d.WithViewVector(gg3d.V3(0, 0, 1)))
type DrawingOption func(*drawingOptions)

type drawingOptions struct {
	strict     bool
	view       Vector
	hasView    bool
	mode       PolygonMode
	workers    int
	background Color
}

func defaultOptions() drawingOptions {
	return drawingOptions{
		mode:       PolygonLine,
		background: White,
	}
}

// WithStrictBounds makes draws that would touch pixels outside the picture
// fail with ErrOutOfBounds, before anything is written, instead of
// dropping those pixels.
func WithStrictBounds() DrawingOption {
	return func(o *drawingOptions) {
		o.strict = true
	}
}

// WithViewVector enables back-face culling of polygons against v, which
// points from the scene toward the viewer.
func WithViewVector(v Vector) DrawingOption {
	return func(o *drawingOptions) {
		o.view = v
		o.hasView = true
	}
}

// WithPolygonMode selects how polygon matrices are rasterized.
func WithPolygonMode(m PolygonMode) DrawingOption {
	return func(o *drawingOptions) {
		o.mode = m
	}
}

// WithWorkers sets the number of goroutines DrawBatch tessellates on.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) DrawingOption {
	return func(o *drawingOptions) {
		o.workers = n
	}
}

// WithBackground sets the colour the picture starts with and Clear restores.
func WithBackground(c Color) DrawingOption {
	return func(o *drawingOptions) {
		o.background = c
	}
}
