package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeAndPower(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, -2), complex(-1, 0)}

	mag := Magnitude(in)
	wantMag := []float64{5, 2, 1}
	for i := range wantMag {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Fatalf("magnitude bin %d: got %v want %v", i, mag[i], wantMag[i])
		}
	}

	pow := Power(in)
	wantPow := []float64{25, 4, 1}
	for i := range wantPow {
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Fatalf("power bin %d: got %v want %v", i, pow[i], wantPow[i])
		}
	}

	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatalf("empty input should return nil")
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, 0, -1}
	im := []float64{4, -2, 0}
	dst := make([]float64, 3)

	MagnitudeFromParts(dst, re, im)

	want := []float64{5, 2, 1}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %v want %v", i, dst[i], want[i])
		}
	}
}

func TestPhase(t *testing.T) {
	in := []complex128{complex(1, 0), complex(0, 1), complex(-1, 0)}

	phase := Phase(in)
	want := []float64{0, math.Pi / 2, math.Pi}
	for i := range want {
		if math.Abs(phase[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %v want %v", i, phase[i], want[i])
		}
	}
}

func TestUnwrapPhase(t *testing.T) {
	// linear phase wrapped into (-pi, pi]
	n := 16
	wrapped := make([]float64, n)
	want := make([]float64, n)
	for i := range wrapped {
		want[i] = -0.9 * math.Pi * float64(i)
		wrapped[i] = math.Atan2(math.Sin(want[i]), math.Cos(want[i]))
	}

	got := UnwrapPhase(wrapped)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("bin %d: got %v want %v", i, got[i], want[i])
		}
	}

	// input is untouched
	if wrapped[n-1] == got[n-1] {
		t.Fatalf("expected wrapped input to differ from unwrapped output")
	}
}
