package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/window"
)

// BandKind identifies the pass-band layout of a filter spec.
type BandKind int

const (
	KindLowPass BandKind = iota
	KindHighPass
	KindBandPass
)

// String returns the band name.
func (k BandKind) String() string {
	switch k {
	case KindLowPass:
		return "LowPass"
	case KindHighPass:
		return "HighPass"
	case KindBandPass:
		return "BandPass"
	default:
		return "Unknown"
	}
}

// Spec is a tagged filter-band variant. Construct it with LowPass, HighPass,
// or BandPass.
type Spec struct {
	kind BandKind
	lo   float64
	hi   float64
}

// LowPass specifies a low-pass band with the given cutoff in Hz.
func LowPass(cutoffHz float64) Spec {
	return Spec{kind: KindLowPass, hi: cutoffHz}
}

// HighPass specifies a high-pass band with the given cutoff in Hz.
func HighPass(cutoffHz float64) Spec {
	return Spec{kind: KindHighPass, lo: cutoffHz}
}

// BandPass specifies a pass band between lowHz and highHz.
func BandPass(lowHz, highHz float64) Spec {
	return Spec{kind: KindBandPass, lo: lowHz, hi: highHz}
}

// Kind returns the band layout.
func (s Spec) Kind() BandKind { return s.kind }

// Cutoffs returns the band edges in Hz. For LowPass only hi is meaningful,
// for HighPass only lo.
func (s Spec) Cutoffs() (lo, hi float64) { return s.lo, s.hi }

// DesignOption configures coefficient design and filter application.
type DesignOption func(*designConfig)

type designConfig struct {
	stopBandAtten   float64
	transitionWidth float64
	zeroPhase       bool
}

func defaultDesignConfig() designConfig {
	return designConfig{
		stopBandAtten:   60,
		transitionWidth: 0.1,
	}
}

// WithStopBandAttenuation sets the stop-band attenuation in dB (default 60).
func WithStopBandAttenuation(db float64) DesignOption {
	return func(c *designConfig) {
		if db > 0 {
			c.stopBandAtten = db
		}
	}
}

// WithTransitionWidth sets the transition width as a fraction of the sample
// rate (default 0.1).
func WithTransitionWidth(w float64) DesignOption {
	return func(c *designConfig) {
		if w > 0 {
			c.transitionWidth = w
		}
	}
}

// WithZeroPhase selects zero-phase application: the filter runs forward and
// backward so no net group delay remains. The effective stop-band
// attenuation per pass is halved during design, since the double pass
// applies the magnitude response twice.
func WithZeroPhase() DesignOption {
	return func(c *designConfig) {
		c.zeroPhase = true
	}
}

// DesignKaiser synthesises FIR coefficients for a low-pass or high-pass
// spec using the Kaiser windowed-sinc method.
//
// A band-pass spec has no single coefficient set; it is realised by Apply as
// two sequential passes.
func DesignKaiser(spec Spec, sampleRate float64, opts ...DesignOption) ([]float64, error) {
	cfg := defaultDesignConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return designKaiser(spec, sampleRate, cfg)
}

func designKaiser(spec Spec, sampleRate float64, cfg designConfig) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("fir sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidArgument)
	}

	var cutoff float64
	highPass := false

	switch spec.kind {
	case KindLowPass:
		cutoff = spec.hi
	case KindHighPass:
		// a high-pass is a low-pass at the mirrored cutoff, spectrally
		// inverted afterwards
		cutoff = sampleRate/2 - spec.lo
		highPass = true
	case KindBandPass:
		return nil, fmt.Errorf("band-pass has no single coefficient set, apply it as two passes: %w", core.ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("unknown filter band %d: %w", spec.kind, core.ErrInvalidArgument)
	}

	if cutoff < 0 {
		return nil, fmt.Errorf("fir cutoff must be >= 0, have %f at %f Hz sample rate: %w", cutoff, sampleRate, core.ErrInvalidArgument)
	}

	atten := cfg.stopBandAtten
	if cfg.zeroPhase {
		atten /= 2
	}

	n := int(math.Ceil((atten - 7.95) / (2.285 * cfg.transitionWidth * math.Pi)))
	if n < 1 {
		return nil, fmt.Errorf("fir order %d is degenerate, increase stop-band attenuation: %w", n, core.ErrInvalidArgument)
	}

	// ideal low-pass impulse response over N points centered on zero
	fc := cutoff / sampleRate
	taps := make([]float64, n)
	for k := range n {
		x := float64(k) - float64(n)/2
		taps[k] = 2 * fc * unnormalizedSinc(2*math.Pi*fc*x)
	}

	beta := kaiserBeta(atten)
	win := window.Generate(window.TypeKaiser, n,
		window.WithPeriodic(),
		window.WithAlpha(math.Pi*beta))
	if err := window.ApplyCoefficientsInPlace(taps, win); err != nil {
		return nil, err
	}

	if highPass {
		// spectral inversion via alternating signs with 1-indexed exponents:
		// tap k gains (-1)^(k+1)
		for k := 0; k < n; k += 2 {
			taps[k] = -taps[k]
		}
	}

	return taps, nil
}

// kaiserBeta selects the Kaiser window parameter for a stop-band attenuation
// in dB by the standard piecewise fit.
func kaiserBeta(attenDB float64) float64 {
	switch {
	case attenDB > 50:
		return 0.1102 * (attenDB - 8.7)
	case attenDB >= 21:
		return 0.5842*math.Pow(attenDB-21, 0.4) + 0.07886*(attenDB-21)
	default:
		return 0
	}
}

// unnormalizedSinc returns sin(x)/x with the removable singularity filled.
func unnormalizedSinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}
