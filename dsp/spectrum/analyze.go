package spectrum

import (
	"fmt"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/field"
	"github.com/cwbudde/acoustic-dsp/dsp/window"
)

// AxisAuto selects the first non-singleton dimension of the analysed signal.
const AxisAuto = -1

// epsilon guards the amplitude normalisation against a zero coherent gain.
// This is the only place a degenerate value is absorbed instead of reported.
const epsilon = 1e-10

// Result is a single-sided spectrum aligned along one axis of the analysed
// signal. Amplitude and Phase keep the signal's shape with the analysed axis
// replaced by the unique-bin count; Frequencies runs from 0 in steps of
// sampleRate/fftLen.
type Result struct {
	Frequencies []float64
	Amplitude   *field.Field
	Phase       *field.Field

	// Axis is the analysed axis after auto-resolution.
	Axis int
	// FFTLength is the transform length after fallback resolution.
	FFTLength int
}

// Option configures Compute.
type Option func(*computeConfig)

type computeConfig struct {
	axis       int
	fftLen     int
	powerOfTwo bool
	unwrap     bool
	window     window.Type
}

func defaultComputeConfig() computeConfig {
	return computeConfig{
		axis:   AxisAuto,
		window: window.TypeRectangular,
	}
}

// WithAxis selects the axis to analyse instead of auto-resolution.
func WithAxis(axis int) Option {
	return func(c *computeConfig) {
		c.axis = axis
	}
}

// WithFFTLength requests a transform length. Lengths smaller than the signal
// length along the analysed axis fall back to the signal length.
func WithFFTLength(n int) Option {
	return func(c *computeConfig) {
		c.fftLen = n
	}
}

// WithNextPowerOfTwo rounds the fallback transform length up to the next
// power of two.
func WithNextPowerOfTwo() Option {
	return func(c *computeConfig) {
		c.powerOfTwo = true
	}
}

// WithUnwrappedPhase removes 2*pi discontinuities from the phase spectrum
// along the analysed axis.
func WithUnwrappedPhase() Option {
	return func(c *computeConfig) {
		c.unwrap = true
	}
}

// WithWindow selects the analysis window applied before the transform.
func WithWindow(t window.Type) Option {
	return func(c *computeConfig) {
		c.window = t
	}
}

// Compute calculates the single-sided amplitude and phase spectrum of sig
// along one axis.
//
// The signal is windowed at its own length (the periodic window form), zero
// padded to the transform length, transformed, normalised by
// signalLength*coherentGain, truncated to the unique single-sided bins, and
// corrected by doubling every bin except DC and an even-length Nyquist bin.
func Compute(sig *field.Field, sampleRate float64, opts ...Option) (*Result, error) {
	if sig == nil || sig.NumElements() <= 1 {
		return nil, fmt.Errorf("spectrum input signal cannot be scalar: %w", core.ErrInvalidInput)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidInput)
	}

	cfg := defaultComputeConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	axis, err := resolveAxis(sig, cfg.axis)
	if err != nil {
		return nil, err
	}

	n := sig.Size(axis)
	fftLen := cfg.fftLen
	if fftLen <= 0 || fftLen < n {
		if cfg.powerOfTwo {
			fftLen = core.NextPowerOfTwo(n)
		} else {
			fftLen = n
		}
	}

	// window at the signal length, not the transform length
	win := window.Generate(cfg.window, n, window.WithPeriodic())
	coherentGain, err := window.Gain(win)
	if err != nil {
		return nil, err
	}

	windowed := sig.Clone()
	applyWindowAlongAxis(windowed, axis, win)

	bins, err := field.FFTAlongAxis(windowed, axis, fftLen)
	if err != nil {
		return nil, err
	}

	// the normalisation uses the signal length, not the transform length
	scale := complex(1/(float64(n)*coherentGain+epsilon), 0)
	data := bins.Data()
	for i := range data {
		data[i] *= scale
	}

	numUnique := fftLen/2 + 1
	single, err := bins.SliceAxis(axis, numUnique)
	if err != nil {
		return nil, err
	}

	singleSidedCorrection(single, axis, fftLen)

	freqs := make([]float64, numUnique)
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / float64(fftLen)
	}

	amp, err := field.FromData(Magnitude(single.Data()), single.Shape()...)
	if err != nil {
		return nil, err
	}

	phase, err := field.FromData(Phase(single.Data()), single.Shape()...)
	if err != nil {
		return nil, err
	}

	if cfg.unwrap {
		unwrapAlongAxis(phase, axis)
	}

	return &Result{
		Frequencies: freqs,
		Amplitude:   amp,
		Phase:       phase,
		Axis:        axis,
		FFTLength:   fftLen,
	}, nil
}

// resolveAxis maps AxisAuto to the first non-singleton dimension.
func resolveAxis(sig *field.Field, axis int) (int, error) {
	if axis == AxisAuto {
		for k := range sig.Dims() {
			if sig.Size(k) > 1 {
				return k, nil
			}
		}
		return 0, fmt.Errorf("all dimensions are singleton, unable to determine analysis axis: %w", core.ErrInvalidInput)
	}

	if axis < 0 || axis >= sig.Dims() {
		return 0, fmt.Errorf("analysis axis %d out of range for %d dims: %w", axis, sig.Dims(), core.ErrInvalidInput)
	}
	return axis, nil
}

func applyWindowAlongAxis(f *field.Field, axis int, win []float64) {
	shape := f.Shape()
	stride := field.Stride(shape, axis)
	data := f.Data()

	field.ForEachLine(shape, axis, func(base int) {
		for k, w := range win {
			data[base+k*stride] *= w
		}
	})
}

// singleSidedCorrection doubles the mirrored bins in place. DC keeps its
// value; for even transform lengths the Nyquist bin has no mirrored twin and
// keeps its value too.
func singleSidedCorrection(bins *field.Complex, axis, fftLen int) {
	n := bins.Size(axis)

	last := n
	if fftLen%2 == 0 {
		last = n - 1
	}

	shape := bins.Shape()
	stride := field.Stride(shape, axis)
	data := bins.Data()

	field.ForEachLine(shape, axis, func(base int) {
		for k := 1; k < last; k++ {
			data[base+k*stride] *= 2
		}
	})
}

func unwrapAlongAxis(phase *field.Field, axis int) {
	shape := phase.Shape()
	stride := field.Stride(shape, axis)
	n := shape[axis]
	data := phase.Data()

	line := make([]float64, n)
	field.ForEachLine(shape, axis, func(base int) {
		for k := range n {
			line[k] = data[base+k*stride]
		}
		UnwrapPhaseInPlace(line)
		for k := range n {
			data[base+k*stride] = line[k]
		}
	})
}
