package gg3d

import "errors"

var (
	// ErrInvalidShape is returned when a point or matrix is constructed from
	// input of the wrong arity, or when a point's w component is not 1.
	ErrInvalidShape = errors.New("gg3d: invalid shape")

	// ErrDimensionMismatch is returned by Multiply when the inner dimensions
	// of the operands disagree.
	ErrDimensionMismatch = errors.New("gg3d: dimension mismatch")

	// ErrUnsupportedOperation is returned when an operation is not defined
	// for a matrix kind, e.g. appending points to a transformation matrix.
	ErrUnsupportedOperation = errors.New("gg3d: unsupported operation")

	// ErrStackUnderflow is returned when popping the last transform.
	ErrStackUnderflow = errors.New("gg3d: transform stack underflow")

	// ErrOutOfBounds is returned for pixel writes outside the picture when
	// strict bounds checking is enabled.
	ErrOutOfBounds = errors.New("gg3d: pixel out of bounds")
)
