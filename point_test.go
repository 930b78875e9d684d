package gg3d

import (
	"errors"
	"testing"
)

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name    string
		in      []float64
		want    Point
		wantErr bool
	}{
		{"2d", []float64{1, 2}, Point{1, 2, 0, 1}, false},
		{"3d", []float64{1, 2, 3}, Point{1, 2, 3, 1}, false},
		{"homogeneous", []float64{1, 2, 3, 1}, Point{1, 2, 3, 1}, false},
		{"w not one", []float64{1, 2, 3, 2}, Point{}, true},
		{"w zero", []float64{1, 2, 3, 0}, Point{}, true},
		{"one coord", []float64{1}, Point{}, true},
		{"five coords", []float64{1, 2, 3, 1, 5}, Point{}, true},
		{"empty", nil, Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPoint(tt.in...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidShape) {
					t.Errorf("NewPoint(%v) error = %v, want ErrInvalidShape", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPoint(%v) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NewPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPointRounded(t *testing.T) {
	tests := []struct {
		in, want Point
	}{
		{Pt(0.5, -0.5, 1.49), Pt(1, -1, 1)},
		{Pt(2.5, -2.5, 2.51), Pt(3, -3, 3)},
		{Pt(-0.49, 0.49, 0), Pt(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := tt.in.Rounded(); got != tt.want {
			t.Errorf("%v.Rounded() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTriangleNormal(t *testing.T) {
	// Counter-clockwise in the xy plane seen from +z.
	tri := Triangle{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0)}
	if got := tri.Normal(); got != V3(0, 0, -1) {
		t.Errorf("Normal() = %v, want (0,0,-1)", got)
	}
	if got := tri.MinZ(); got != 0 {
		t.Errorf("MinZ() = %v, want 0", got)
	}
}
