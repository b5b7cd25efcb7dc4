package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/internal/testutil"
)

func TestApplyBandPassComposition(t *testing.T) {
	const (
		fs = 1000.0
		n  = 2000
		// skip the transient of both sequential passes
		settle = 600
	)

	spec := BandPass(100, 300)
	opts := []DesignOption{WithTransitionWidth(0.05)}

	inBand, err := Apply(testutil.Tone(200, fs, n), fs, spec, opts...)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := 1 / math.Sqrt2
	if got := testutil.RMS(inBand[settle:]); math.Abs(got-want) > 0.02 {
		t.Fatalf("in-band tone RMS=%f want %f", got, want)
	}

	low, err := Apply(testutil.Tone(30, fs, n), fs, spec, opts...)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	testutil.RequireAttenuationDB(t, low[settle:], inBand[settle:], 40)

	high, err := Apply(testutil.Tone(400, fs, n), fs, spec, opts...)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	testutil.RequireAttenuationDB(t, high[settle:], inBand[settle:], 40)
}

func TestApplyGroupDelay(t *testing.T) {
	const (
		fs     = 1000.0
		n      = 512
		center = 256
	)

	// slow Gaussian pulse, spectral content well inside the pass band
	pulse := testutil.GaussianPulse(center, 20, n)

	causal, err := Apply(pulse, fs, LowPass(100))
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	// default design has 73 taps, so the causal pass delays by 36 samples
	if got := argMax(causal); got < center+35 || got > center+37 {
		t.Fatalf("causal peak at %d want ~%d", got, center+36)
	}

	zero, err := Apply(pulse, fs, LowPass(100), WithZeroPhase())
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	if got := argMax(zero); got < center-1 || got > center+1 {
		t.Fatalf("zero-phase peak at %d want %d", got, center)
	}

	if peak := zero[argMax(zero)]; math.Abs(peak-1) > 0.01 {
		t.Fatalf("zero-phase peak amplitude=%f want ~1", peak)
	}
}

func TestApplyErrors(t *testing.T) {
	if _, err := Apply(nil, 1000, LowPass(100)); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty signal, got %v", err)
	}

	sig := testutil.Tone(100, 1000, 64)
	if _, err := Apply(sig, 1000, BandPass(300, 100)); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for descending cutoffs, got %v", err)
	}
	if _, err := Apply(sig, 1000, BandPass(200, 200)); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for equal cutoffs, got %v", err)
	}
}

func argMax(buf []float64) int {
	best := 0
	for i, v := range buf {
		if v > buf[best] {
			best = i
		}
	}
	return best
}
