package gg3d

import (
	"errors"
	"testing"
)

func TestParametricCurve(t *testing.T) {
	p := NewCurve(
		func(t float64) float64 { return 2 * t },
		func(t float64) float64 { return t * t },
		func(float64) float64 { return 7 },
	)
	if p.Arity() != 1 {
		t.Fatalf("Arity() = %d, want 1", p.Arity())
	}
	got, err := p.Sample(3)
	if err != nil {
		t.Fatalf("Sample(3) = %v", err)
	}
	if got != Pt(6, 9, 7) {
		t.Errorf("Sample(3) = %v, want (6,9,7,1)", got)
	}
	if _, err := p.Sample(1, 2); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Sample(1, 2) error = %v, want ErrInvalidShape", err)
	}
}

func TestParametricSurface(t *testing.T) {
	p := NewSurface(
		func(u, v float64) float64 { return u + v },
		func(u, v float64) float64 { return u - v },
		func(u, v float64) float64 { return u * v },
	)
	got, err := p.Sample(3, 2)
	if err != nil {
		t.Fatalf("Sample(3, 2) = %v", err)
	}
	if got != Pt(5, 1, 6) {
		t.Errorf("Sample(3, 2) = %v, want (5,1,6,1)", got)
	}
	if got.W() != 1 {
		t.Errorf("W() = %v, want 1", got.W())
	}
	if _, err := p.Sample(); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Sample() error = %v, want ErrInvalidShape", err)
	}
}
