// Command gg3ddemo renders a small 3D scene with gg3d.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/sink"
)

func main() {
	var (
		width   = flag.Int("width", 500, "image width")
		height  = flag.Int("height", 500, "image height")
		output  = flag.String("output", "scene.png", "output file (.ppm, .png, .bmp, .tiff, .jpg)")
		mode    = flag.String("mode", "fill", "polygon mode: line, fill or point")
		steps   = flag.Int("steps", gg3d.DefaultSteps, "samples per curve and solid")
		cull    = flag.Bool("cull", true, "cull back faces")
		workers = flag.Int("workers", 0, "tessellation workers (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "log draw diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		gg3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pm, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("Invalid mode: %v", err)
	}

	opts := []gg3d.DrawingOption{
		gg3d.WithPolygonMode(pm),
		gg3d.WithWorkers(*workers),
		gg3d.WithBackground(gg3d.MustHex("#101828")),
	}
	if *cull {
		opts = append(opts, gg3d.WithViewVector(gg3d.V3(0, 0, 1)))
	}
	d := gg3d.NewDrawing(*width, *height, opts...)

	if err := drawScene(d, float64(*width), float64(*height), *steps); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	if err := d.Generate(sink.File(*output)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d)\n", *output, *width, *height)
}

func parseMode(s string) (gg3d.PolygonMode, error) {
	for _, m := range []gg3d.PolygonMode{gg3d.PolygonLine, gg3d.PolygonFill, gg3d.PolygonPoint} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: polygon mode %q", gg3d.ErrUnsupportedOperation, s)
}

func drawScene(d *gg3d.Drawing, w, h float64, steps int) error {
	// Solids share a tilt about the picture centre.
	d.Push()
	center := gg3d.Pt(w/2, h/2, 0)
	if err := d.RotateAbout(gg3d.AxisX, 25, gg3d.Degrees, center); err != nil {
		return err
	}
	if err := d.RotateAbout(gg3d.AxisY, 35, gg3d.Degrees, center); err != nil {
		return err
	}

	err := d.DrawBatch(
		gg3d.Primitive{
			Geometry: func() (gg3d.Matrix, error) {
				return gg3d.Box(w*0.1, h*0.1, -w*0.1, w*0.25, h*0.25, w*0.2), nil
			},
			Color: gg3d.MustHex("#F2A541"),
		},
		gg3d.Primitive{
			Geometry: func() (gg3d.Matrix, error) {
				return gg3d.Sphere(w*0.65, h*0.3, 0, w*0.15, steps, steps)
			},
			Color: gg3d.MustHex("#3D9BE9"),
		},
		gg3d.Primitive{
			Geometry: func() (gg3d.Matrix, error) {
				return gg3d.Torus(w*0.4, h*0.68, 0, w*0.05, w*0.17, steps, steps)
			},
			Color: gg3d.MustHex("#E94F64"),
		},
	)
	if err != nil {
		return err
	}
	if err := d.Pop(); err != nil {
		return err
	}

	// Flat overlays drawn without the tilt.
	if err := d.DrawCircle(w/2, h/2, -w, w*0.45, steps*2, gg3d.White); err != nil {
		return err
	}
	if err := d.DrawHermite(gg3d.Pt(w*0.05, h*0.95, 0), gg3d.V3(w, 0, 0),
		gg3d.Pt(w*0.95, h*0.95, 0), gg3d.V3(0, -h, 0), steps, gg3d.Yellow); err != nil {
		return err
	}
	return d.DrawBezier(gg3d.Pt(w*0.05, h*0.05, 0), gg3d.Pt(w*0.3, h*0.4, 0),
		gg3d.Pt(w*0.7, -h*0.2, 0), gg3d.Pt(w*0.95, h*0.05, 0), steps, gg3d.Cyan)
}
