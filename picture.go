package gg3d

import (
	"fmt"
	"image"
	"image/color"
)

// Picture is a width x height grid of RGB colours. It starts white.
type Picture struct {
	width  int
	height int
	pix    []Color // row-major
}

// NewPicture creates a white picture with the given dimensions.
func NewPicture(width, height int) *Picture {
	width, height = max(width, 0), max(height, 0)
	p := &Picture{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	p.Fill(White)
	return p
}

// Width returns the width of the picture.
func (p *Picture) Width() int {
	return p.width
}

// Height returns the height of the picture.
func (p *Picture) Height() int {
	return p.height
}

// Contains reports whether (x, y) is inside the picture.
func (p *Picture) Contains(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel sets the colour of a single pixel. Writes outside the picture
// return ErrOutOfBounds and leave the picture untouched.
func (p *Picture) SetPixel(x, y int, c Color) error {
	if !p.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	p.pix[y*p.width+x] = c
	return nil
}

// Pixel returns the colour of a single pixel, or White outside the picture.
func (p *Picture) Pixel(x, y int) Color {
	if !p.Contains(x, y) {
		return White
	}
	return p.pix[y*p.width+x]
}

// Fill sets every pixel to c.
func (p *Picture) Fill(c Color) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// Clone returns an independent copy of the picture.
func (p *Picture) Clone() *Picture {
	pix := make([]Color, len(p.pix))
	copy(pix, p.pix)
	return &Picture{width: p.width, height: p.height, pix: pix}
}

// Rows returns a row-major copy of the grid: rows[y][x].
func (p *Picture) Rows() [][]Color {
	rows := make([][]Color, p.height)
	for y := range rows {
		row := make([]Color, p.width)
		copy(row, p.pix[y*p.width:(y+1)*p.width])
		rows[y] = row
	}
	return rows
}

// ToImage converts the picture to an image.RGBA.
func (p *Picture) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.pix {
		o := i * 4
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = 0xFF
	}
	return img
}

// At implements the image.Image interface.
func (p *Picture) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Picture) ColorModel() color.Model {
	return color.RGBAModel
}

// Sink consumes a finished picture as a row-major grid, rows[y][x]. File
// formats, compression and display belong to the sink.
type Sink interface {
	Consume(width, height int, rows [][]Color) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(width, height int, rows [][]Color) error

// Consume calls f.
func (f SinkFunc) Consume(width, height int, rows [][]Color) error {
	return f(width, height, rows)
}
