// Package gg3d is a small software 3D rasterizer.
//
// # Overview
//
// gg3d turns points, segments and triangles in 3D space into pixels. A
// [Drawing] owns a [Picture], a depth buffer and a stack of [Transform]
// values. Geometry comes from the generator functions ([Circle], [Hermite],
// [Bezier], [Box], [Sphere], [Torus]) or is built by hand as a [Matrix].
//
// # Quick Start
//
//	import "github.com/gogpu/gg3d"
//
//	d := gg3d.NewDrawing(500, 500, gg3d.WithPolygonMode(gg3d.PolygonFill))
//
//	d.Push()
//	d.RotateY(30, gg3d.Degrees)
//	d.DrawSphere(250, 250, 0, 100, 0, gg3d.Blue)
//	d.Pop()
//
//	d.Generate(sink.File("scene.png"))
//
// # Transforms
//
// Points are row vectors: a point p maps to p * T and translations live in
// the last row. Issuing a transform on a Drawing (or on a [Transform] with
// its builder methods) left-multiplies the current one, so the transform
// issued last acts on geometry first.
//
// # Coordinate System
//
//   - Pixel (0,0) is the first row of the picture
//   - X selects the column, Y the row
//   - Greater Z is nearer to the viewer; ties go to the newest write
//   - Angles take an explicit [AngleUnit]
//
// # Culling
//
// With a view vector set (pointing from the scene toward the viewer),
// polygons whose outward side faces away are skipped. Generated solids are
// wound counter-clockwise seen from outside.
//
// # Output
//
// [Drawing.Generate] hands the picture to a [Sink]. The sink subpackage
// writes PPM, PNG, BMP, TIFF and JPEG files.
package gg3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
