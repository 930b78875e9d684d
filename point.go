package gg3d

import (
	"fmt"
	"math"
)

// Point is a homogeneous 3D point (x, y, z, w). Every point stored in a
// point, edge or polygon matrix has w == 1.
type Point [4]float64

// Pt is a convenience function to create a Point with w == 1.
func Pt(x, y, z float64) Point {
	return Point{x, y, z, 1}
}

// NewPoint builds a Point from 2, 3 or 4 coordinates. Two coordinates extend
// to (x, y, 0, 1) and three to (x, y, z, 1). A fourth coordinate must be 1.
func NewPoint(coords ...float64) (Point, error) {
	switch len(coords) {
	case 2:
		return Point{coords[0], coords[1], 0, 1}, nil
	case 3:
		return Point{coords[0], coords[1], coords[2], 1}, nil
	case 4:
		if coords[3] != 1 {
			return Point{}, fmt.Errorf("%w: point %v has w != 1", ErrInvalidShape, coords)
		}
		return Point{coords[0], coords[1], coords[2], 1}, nil
	default:
		return Point{}, fmt.Errorf("%w: point needs 2 to 4 coordinates, got %d", ErrInvalidShape, len(coords))
	}
}

// X returns the x coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the y coordinate.
func (p Point) Y() float64 { return p[1] }

// Z returns the z coordinate.
func (p Point) Z() float64 { return p[2] }

// W returns the homogeneous coordinate.
func (p Point) W() float64 { return p[3] }

// Rounded returns p with every coordinate rounded half away from zero.
func (p Point) Rounded() Point {
	return Point{math.Round(p[0]), math.Round(p[1]), math.Round(p[2]), math.Round(p[3])}
}

// Approx returns true if two points are equal within epsilon per coordinate.
func (p Point) Approx(q Point, epsilon float64) bool {
	for i := range p {
		if math.Abs(p[i]-q[i]) > epsilon {
			return false
		}
	}
	return true
}

func (p Point) valid() bool {
	return p[3] == 1
}

// Edge is one segment of an edge matrix.
type Edge [2]Point

// Triangle is one face of a polygon matrix.
type Triangle [3]Point

// Normal returns cross(v2-v0, v1-v0). For faces generated by this package,
// which wind counter-clockwise when seen from outside, this is the inward
// normal.
func (t Triangle) Normal() Vector {
	return Between(t[0], t[2]).Cross(Between(t[0], t[1]))
}

// MinZ returns the smallest z of the three corners.
func (t Triangle) MinZ() float64 {
	return math.Min(t[0][2], math.Min(t[1][2], t[2][2]))
}
