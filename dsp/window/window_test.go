package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

func TestGenerateHannSymmetric(t *testing.T) {
	w := Generate(TypeHann, 9)
	if len(w) != 9 {
		t.Fatalf("length mismatch: %d", len(w))
	}

	if math.Abs(w[0]) > 1e-15 || math.Abs(w[8]) > 1e-15 {
		t.Fatalf("symmetric Hann endpoints should be zero: %v %v", w[0], w[8])
	}

	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("symmetric Hann center should be one: %v", w[4])
	}

	for i := range 4 {
		if math.Abs(w[i]-w[8-i]) > 1e-15 {
			t.Fatalf("window not symmetric at %d: %v vs %v", i, w[i], w[8-i])
		}
	}
}

func TestGeneratePeriodicForm(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())

	// periodic Hann of length 8 peaks at sample 4, not at (N-1)/2
	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("periodic Hann should peak at N/2: %v", w[4])
	}

	if math.Abs(w[0]) > 1e-15 {
		t.Fatalf("periodic Hann first sample should be zero: %v", w[0])
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("expected nil for non-positive length")
	}
}

func TestKaiserDegeneratesToRectangular(t *testing.T) {
	w := Generate(TypeKaiser, 16, WithAlpha(0))
	for i, v := range w {
		if v != 1 {
			t.Fatalf("kaiser beta=0 sample %d: %v want 1", i, v)
		}
	}
}

func TestKaiserShape(t *testing.T) {
	w := Generate(TypeKaiser, 17, WithAlpha(8))

	if math.Abs(w[8]-1) > 1e-12 {
		t.Fatalf("kaiser center should be one: %v", w[8])
	}

	for i := 1; i <= 8; i++ {
		if w[i] < w[i-1] {
			t.Fatalf("kaiser should be non-decreasing up to center at %d", i)
		}
	}
}

func TestGain(t *testing.T) {
	g, err := Gain(Generate(TypeRectangular, 32))
	if err != nil {
		t.Fatalf("Gain error: %v", err)
	}
	if math.Abs(g-1) > 1e-15 {
		t.Fatalf("rectangular gain=%v want 1", g)
	}

	// periodic Hann mean is exactly 0.5
	g, err = Gain(Generate(TypeHann, 64, WithPeriodic()))
	if err != nil {
		t.Fatalf("Gain error: %v", err)
	}
	if math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("periodic Hann gain=%v want 0.5", g)
	}

	if _, err = Gain(nil); err == nil {
		t.Fatalf("expected error for empty coefficients")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	enbw, err := EquivalentNoiseBandwidth(Generate(TypeRectangular, 64))
	if err != nil {
		t.Fatalf("ENBW error: %v", err)
	}
	if math.Abs(enbw-1) > 1e-12 {
		t.Fatalf("rectangular ENBW=%v want 1", enbw)
	}

	enbw, err = EquivalentNoiseBandwidth(Generate(TypeHann, 4096, WithPeriodic()))
	if err != nil {
		t.Fatalf("ENBW error: %v", err)
	}
	if math.Abs(enbw-1.5) > 1e-3 {
		t.Fatalf("Hann ENBW=%v want 1.5", enbw)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Type{
		"Hanning":         TypeHann,
		"hann":            TypeHann,
		"BLACKMAN":        TypeBlackman,
		"Blackman-Harris": TypeBlackmanHarris,
		"bartlett":        TypeTriangle,
		"Gaussian":        TypeGauss,
		"Rectangular":     TypeRectangular,
	}
	for name, want := range cases {
		got, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("Parse(%q)=%v want %v", name, got, want)
		}
	}

	_, err := Parse("Parzen")
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}
	Apply(TypeHann, buf)

	want := Generate(TypeHann, 9)
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v want %v", i, buf[i], want[i])
		}
	}

	// no-op on empty input
	Apply(TypeHann, nil)
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{2, 0.5, -1}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients error: %v", err)
	}
	want := []float64{2, 1, -3}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v want %v", i, out[i], want[i])
		}
	}

	if _, err = ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestBesselI0(t *testing.T) {
	if got := BesselI0(0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("I0(0)=%v want 1", got)
	}

	// I0(1) = 1.2660658...
	if got := BesselI0(1); math.Abs(got-1.2660658777520084) > 1e-7 {
		t.Fatalf("I0(1)=%v", got)
	}

	// even function, monotonically increasing in |x|
	if BesselI0(-3) != BesselI0(3) {
		t.Fatalf("I0 should be even")
	}
	if BesselI0(5) <= BesselI0(4) {
		t.Fatalf("I0 should increase with |x|")
	}
}

func TestGenerateND1DMatchesGenerate(t *testing.T) {
	got, err := GenerateND(TypeBlackman, []int{9}, []bool{true})
	if err != nil {
		t.Fatalf("GenerateND error: %v", err)
	}

	want := Generate(TypeBlackman, 9)
	data := got.Data()
	for i := range want {
		if math.Abs(data[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, data[i], want[i])
		}
	}
}

func TestGenerateNDPeakOnSample(t *testing.T) {
	// odd axis, symmetric taps: peak at (n-1)/2
	w, err := GenerateND(TypeBlackman, []int{5}, []bool{true})
	if err != nil {
		t.Fatalf("GenerateND error: %v", err)
	}
	if math.Abs(w.At(2)-1) > 1e-12 {
		t.Fatalf("odd axis peak=%v want 1", w.At(2))
	}

	// even axis, periodic taps: peak at n/2
	w, err = GenerateND(TypeBlackman, []int{6}, []bool{false})
	if err != nil {
		t.Fatalf("GenerateND error: %v", err)
	}
	if math.Abs(w.At(3)-1) > 1e-12 {
		t.Fatalf("even axis peak=%v want 1", w.At(3))
	}
}

func TestGenerateNDIsotropy(t *testing.T) {
	w, err := GenerateND(TypeHann, []int{9, 9}, []bool{true, true})
	if err != nil {
		t.Fatalf("GenerateND error: %v", err)
	}

	if math.Abs(w.At(4, 4)-1) > 1e-12 {
		t.Fatalf("center=%v want 1", w.At(4, 4))
	}

	// rotational symmetry: swapping axes leaves the window unchanged
	if math.Abs(w.At(2, 4)-w.At(4, 2)) > 1e-12 {
		t.Fatalf("window not isotropic: %v vs %v", w.At(2, 4), w.At(4, 2))
	}

	// corners sit at or beyond unit radius and take the edge value
	if math.Abs(w.At(0, 0)) > 1e-12 {
		t.Fatalf("corner=%v want 0", w.At(0, 0))
	}
}

func TestGenerateNDErrors(t *testing.T) {
	if _, err := GenerateND(TypeHann, []int{4, 4}, []bool{true}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for flag mismatch, got %v", err)
	}

	if _, err := GenerateND(TypeHann, []int{}, nil); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty shape, got %v", err)
	}
}
