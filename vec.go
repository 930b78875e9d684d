package gg3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a free 3D vector used for culling math. Unlike Point it carries
// no homogeneous w component and is never drawn.
type Vector mgl64.Vec3

// V3 is a convenience function to create a Vector.
func V3(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// NewVector creates a Vector from exactly three components.
func NewVector(components ...float64) (Vector, error) {
	if len(components) != 3 {
		return Vector{}, fmt.Errorf("%w: vector needs 3 components, got %d", ErrInvalidShape, len(components))
	}
	return Vector{components[0], components[1], components[2]}, nil
}

// Between returns the displacement from p to q, ignoring w.
func Between(p, q Point) Vector {
	return Vector{q[0] - p[0], q[1] - p[1], q[2] - p[2]}
}

// X returns the x component.
func (v Vector) X() float64 { return v[0] }

// Y returns the y component.
func (v Vector) Y() float64 { return v[1] }

// Z returns the z component.
func (v Vector) Z() float64 { return v[2] }

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector(mgl64.Vec3(v).Add(mgl64.Vec3(w)))
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector(mgl64.Vec3(v).Sub(mgl64.Vec3(w)))
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector(mgl64.Vec3(v).Mul(s))
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return mgl64.Vec3(v).Dot(mgl64.Vec3(w))
}

// Cross returns the right-handed cross product v x w.
func (v Vector) Cross(w Vector) Vector {
	return Vector(mgl64.Vec3(v).Cross(mgl64.Vec3(w)))
}

// Magnitude returns the length of the vector.
func (v Vector) Magnitude() float64 {
	return mgl64.Vec3(v).Len()
}

// MagnitudeSquared returns the squared length of the vector.
func (v Vector) MagnitudeSquared() float64 {
	return mgl64.Vec3(v).LenSqr()
}

// AngleBetween returns the angle between v and w in radians.
// It returns 0 when either vector has zero length.
func (v Vector) AngleBetween(w Vector) float64 {
	mv, mw := v.Magnitude(), w.Magnitude()
	if mv == 0 || mw == 0 {
		return 0
	}
	cos := v.Dot(w) / (mv * mw)
	// Rounding can push parallel vectors slightly past +-1.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// IsZero returns true if the vector is the zero vector.
func (v Vector) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
