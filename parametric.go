package gg3d

import "fmt"

// Parametric evaluates three coordinate functions of one or two parameters
// into a homogeneous point. Curves ignore the second parameter.
type Parametric struct {
	x, y, z func(u, v float64) float64
	arity   int
}

// NewCurve creates a one-parameter Parametric.
func NewCurve(x, y, z func(t float64) float64) Parametric {
	lift := func(f func(float64) float64) func(u, v float64) float64 {
		return func(u, _ float64) float64 { return f(u) }
	}
	return Parametric{x: lift(x), y: lift(y), z: lift(z), arity: 1}
}

// NewSurface creates a two-parameter Parametric.
func NewSurface(x, y, z func(u, v float64) float64) Parametric {
	return Parametric{x: x, y: y, z: z, arity: 2}
}

// Arity returns the number of parameters the functions take.
func (p Parametric) Arity() int {
	return p.arity
}

// Sample evaluates the functions at args, which must match Arity.
func (p Parametric) Sample(args ...float64) (Point, error) {
	if len(args) != p.arity {
		return Point{}, fmt.Errorf("%w: parametric takes %d arguments, got %d", ErrInvalidShape, p.arity, len(args))
	}
	if p.arity == 1 {
		return p.At(args[0]), nil
	}
	return p.AtUV(args[0], args[1]), nil
}

// At evaluates a curve at t.
func (p Parametric) At(t float64) Point {
	return p.AtUV(t, 0)
}

// AtUV evaluates a surface at (u, v). x, y and z are always evaluated in
// that order.
func (p Parametric) AtUV(u, v float64) Point {
	x := p.x(u, v)
	y := p.y(u, v)
	z := p.z(u, v)
	return Point{x, y, z, 1}
}
