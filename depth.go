package gg3d

import "math"

// DepthBuffer records the nearest depth written to each pixel.
//
// Greater z is nearer to the viewer. Every cell starts at negative infinity,
// and a write at z passes when z is at least the stored depth, so equal
// depths let the newest write win.
type DepthBuffer struct {
	width  int
	height int
	z      []float64
}

// NewDepthBuffer creates a buffer with every cell at negative infinity.
func NewDepthBuffer(width, height int) *DepthBuffer {
	width, height = max(width, 0), max(height, 0)
	b := &DepthBuffer{width: width, height: height, z: make([]float64, width*height)}
	b.Reset()
	return b
}

// Reset sets every cell back to negative infinity.
func (b *DepthBuffer) Reset() {
	inf := math.Inf(-1)
	for i := range b.z {
		b.z[i] = inf
	}
}

// At returns the stored depth, or negative infinity outside the buffer.
func (b *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return math.Inf(-1)
	}
	return b.z[y*b.width+x]
}

// Nearer reports whether depth z wins against stored.
func Nearer(z, stored float64) bool {
	return z >= stored
}

// TestAndSet stores z and returns true if z is at least as near as the
// current value at (x, y). Out-of-range coordinates return false.
func (b *DepthBuffer) TestAndSet(x, y int, z float64) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	i := y*b.width + x
	if !Nearer(z, b.z[i]) {
		return false
	}
	b.z[i] = z
	return true
}
