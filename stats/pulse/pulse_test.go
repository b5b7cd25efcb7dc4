package pulse

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

func TestFullWidthHalfMaxTriangle(t *testing.T) {
	values := []float64{0, 1, 2, 3, 2, 1, 0}
	positions := []float64{0, 1, 2, 3, 4, 5, 6}

	w, err := FullWidthHalfMax(values, positions)
	if err != nil {
		t.Fatalf("FullWidthHalfMax() error = %v", err)
	}

	if math.Abs(w.LeftEdge-1.5) > 1e-12 {
		t.Fatalf("left edge = %v, want 1.5", w.LeftEdge)
	}
	if math.Abs(w.RightEdge-4.5) > 1e-12 {
		t.Fatalf("right edge = %v, want 4.5", w.RightEdge)
	}
	if math.Abs(w.Value-3) > 1e-12 {
		t.Fatalf("width = %v, want 3", w.Value)
	}
}

func TestFullWidthHalfMaxGaussian(t *testing.T) {
	const (
		n     = 201
		sigma = 10.0
	)

	values := make([]float64, n)
	positions := make([]float64, n)
	for i := range values {
		x := float64(i) - 100
		positions[i] = x
		values[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}

	w, err := FullWidthHalfMax(values, positions)
	if err != nil {
		t.Fatalf("FullWidthHalfMax() error = %v", err)
	}

	want := 2 * math.Sqrt(2*math.Log(2)) * sigma
	if math.Abs(w.Value-want) > 0.05 {
		t.Fatalf("width = %v, want %v", w.Value, want)
	}
	if math.Abs(w.LeftEdge+w.RightEdge) > 0.05 {
		t.Fatalf("edges not symmetric about 0: %v, %v", w.LeftEdge, w.RightEdge)
	}
}

func TestFullWidthHalfMaxNonUniformSpacing(t *testing.T) {
	// same triangle on a stretched axis doubles the width
	values := []float64{0, 1, 2, 3, 2, 1, 0}
	positions := []float64{0, 2, 4, 6, 8, 10, 12}

	w, err := FullWidthHalfMax(values, positions)
	if err != nil {
		t.Fatalf("FullWidthHalfMax() error = %v", err)
	}
	if math.Abs(w.Value-6) > 1e-12 {
		t.Fatalf("width = %v, want 6", w.Value)
	}
}

func TestFullWidthHalfMaxErrors(t *testing.T) {
	if _, err := FullWidthHalfMax([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for length mismatch, got %v", err)
	}

	if _, err := FullWidthHalfMax([]float64{1, 2}, []float64{1, 2}); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short input, got %v", err)
	}

	// monotonic ramp never comes back below half maximum
	if _, err := FullWidthHalfMax([]float64{0, 1, 2, 3, 10}, []float64{0, 1, 2, 3, 4}); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing trailing edge, got %v", err)
	}
}
