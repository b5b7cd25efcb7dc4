package fir

import (
	"fmt"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

// Apply filters signal with the Kaiser windowed-sinc design for spec and
// returns the filtered samples.
//
// A band-pass spec is realised recursively: the low-pass design at the upper
// cutoff is applied first, then the high-pass design at the lower cutoff is
// applied to its output. The signal is padded with one filter length of
// leading zeros so the transient has room to settle; the padding region is
// stripped before returning. With WithZeroPhase the filter additionally runs
// over the time-reversed output and the result is reversed again, cancelling
// the group delay.
func Apply(signal []float64, sampleRate float64, spec Spec, opts ...DesignOption) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("fir input signal must not be empty: %w", core.ErrInvalidInput)
	}

	cfg := defaultDesignConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if spec.kind == KindBandPass {
		if !(spec.lo < spec.hi) {
			return nil, fmt.Errorf("band-pass cutoffs must be ascending, have [%f, %f]: %w", spec.lo, spec.hi, core.ErrInvalidArgument)
		}

		lowPassed, err := applyDesigned(signal, sampleRate, LowPass(spec.hi), cfg)
		if err != nil {
			return nil, err
		}
		return applyDesigned(lowPassed, sampleRate, HighPass(spec.lo), cfg)
	}

	return applyDesigned(signal, sampleRate, spec, cfg)
}

func applyDesigned(signal []float64, sampleRate float64, spec Spec, cfg designConfig) ([]float64, error) {
	taps, err := designKaiser(spec, sampleRate, cfg)
	if err != nil {
		return nil, err
	}

	n := len(taps)

	// leading zeros give the filter transient room to settle and the
	// zero-phase reverse pass room to work
	padded := make([]float64, n+len(signal))
	copy(padded[n:], signal)

	filter := New(taps)
	filter.ProcessBlock(padded)

	if cfg.zeroPhase {
		reverse(padded)
		filter.Reset()
		filter.ProcessBlock(padded)
		reverse(padded)
	}

	return padded[n:], nil
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
