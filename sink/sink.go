// Package sink writes finished gg3d pictures to image files.
//
// Every sink implements [gg3d.Sink] and can be passed to
// [gg3d.Drawing.Generate]:
//
//	if err := d.Generate(sink.File("out.png")); err != nil {
//		log.Fatal(err)
//	}
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/gg3d"
)

// ErrUnknownFormat is returned for file extensions and formats that have no
// encoder.
var ErrUnknownFormat = errors.New("sink: unknown format")

// Format is an output image format.
type Format uint8

const (
	// PPM is the ASCII portable pixmap (P3) format.
	PPM Format = iota
	PNG
	BMP
	TIFF
	JPEG
)

var formatNames = [...]string{PPM: "ppm", PNG: "png", BMP: "bmp", TIFF: "tiff", JPEG: "jpeg"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Image converts a row-major grid to an opaque image.RGBA.
func Image(width, height int, rows [][]gg3d.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range min(height, len(rows)) {
		for x := range min(width, len(rows[y])) {
			c := rows[y][x]
			o := img.PixOffset(x, y)
			img.Pix[o+0] = c.R()
			img.Pix[o+1] = c.G()
			img.Pix[o+2] = c.B()
			img.Pix[o+3] = 0xFF
		}
	}
	return img
}

// Encode returns a sink that writes the picture to w in format f.
func Encode(w io.Writer, f Format) gg3d.Sink {
	return gg3d.SinkFunc(func(width, height int, rows [][]gg3d.Color) error {
		return encode(w, f, width, height, rows)
	})
}

// File returns a sink that creates path and writes the picture in the format
// named by its extension.
func File(path string) gg3d.Sink {
	return gg3d.SinkFunc(func(width, height int, rows [][]gg3d.Color) error {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		out, err := os.Create(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("sink: create file: %w", err)
		}
		if err := encode(out, f, width, height, rows); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	})
}

func encode(w io.Writer, f Format, width, height int, rows [][]gg3d.Color) error {
	var err error
	switch f {
	case PPM:
		err = writePPM(w, width, height, rows)
	case PNG:
		err = png.Encode(w, Image(width, height, rows))
	case BMP:
		err = bmp.Encode(w, Image(width, height, rows))
	case TIFF:
		err = tiff.Encode(w, Image(width, height, rows), &tiff.Options{Compression: tiff.Deflate})
	case JPEG:
		err = jpeg.Encode(w, Image(width, height, rows), &jpeg.Options{Quality: 95})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("sink: encode %v: %w", f, err)
	}
	return nil
}

// writePPM writes the plain P3 header followed by space separated channel
// values, one picture row per line.
func writePPM(w io.Writer, width, height int, rows [][]gg3d.Color) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3 %d %d 255\n", width, height)
	for y := range height {
		for x := range width {
			c := gg3d.White
			if y < len(rows) && x < len(rows[y]) {
				c = rows[y][x]
			}
			fmt.Fprintf(bw, "%d %d %d ", c.R(), c.G(), c.B())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
