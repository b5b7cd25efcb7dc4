package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1)=%f want=1", got)
	}

	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp(-5,0,1)=%f want=0", got)
	}

	// swapped bounds are reordered
	if got := Clamp(0.5, 1, 0); got != 0.5 {
		t.Fatalf("Clamp(0.5,1,0)=%f want=0.5", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatalf("expected values within eps to compare equal")
	}

	if NearlyEqual(1, 1.1, 1e-12) {
		t.Fatalf("expected distant values to compare unequal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatalf("expected zero self-comparison to hold with default eps")
	}
}

func TestDBConversionRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 6, 20} {
		lin := DBToLinear(db)
		if got := LinearToDB(lin); math.Abs(got-db) > 1e-12 {
			t.Fatalf("round trip %f dB -> %f", db, got)
		}
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatalf("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatalf("LinearToDB(-1) should be NaN")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 1000: 1024, 1024: 1024}
	for in, want := range cases {
		if got := NextPowerOfTwo(in); got != want {
			t.Fatalf("NextPowerOfTwo(%d)=%d want=%d", in, got, want)
		}
	}
}

func TestProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate not applied: %f", cfg.SampleRate)
	}

	// invalid rates keep the default
	cfg = ApplyProcessorOptions(WithSampleRate(-1))
	if cfg.SampleRate != 48000 {
		t.Fatalf("invalid rate should keep default: %f", cfg.SampleRate)
	}
}
