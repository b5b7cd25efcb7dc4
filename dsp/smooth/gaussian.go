package smooth

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/field"
)

// GaussianFilter applies a two-sided Gaussian frequency-domain filter with
// the given center frequency in Hz and bandwidth as a percentage of the
// center frequency. The bandwidth is the full width at half maximum of the
// Gaussian passband.
//
// For a multi-dimensional signal the filter runs along the last axis, so a
// [channels, samples] field is filtered row by row.
func GaussianFilter(signal *field.Field, sampleRate, centerFreq, bandwidthPercent float64) (*field.Field, error) {
	if signal == nil || signal.NumElements() == 0 {
		return nil, fmt.Errorf("gaussian filter input must not be empty: %w", core.ErrInvalidInput)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("gaussian filter sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidArgument)
	}
	if centerFreq <= 0 || bandwidthPercent <= 0 {
		return nil, fmt.Errorf("gaussian filter center frequency and bandwidth must be > 0: %w", core.ErrInvalidArgument)
	}

	shape := signal.Shape()
	n := shape[len(shape)-1]

	// centered frequency axis matching an fftshifted spectrum
	f0 := -float64(n) / 2
	if n%2 == 1 {
		f0 = -float64(n-1) / 2
	}

	// bandwidth% of the center frequency is the FWHM of the passband
	sigma := bandwidthPercent / 100 * centerFreq / (2 * math.Sqrt(2*math.Log(2)))
	variance := sigma * sigma

	mask := make([]float64, n)
	for i := range mask {
		f := (f0 + float64(i)) * sampleRate / float64(n)
		mask[i] = math.Max(
			gaussian(f, 1, centerFreq, variance),
			gaussian(f, 1, -centerFreq, variance))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("gaussian filter: failed to create FFT plan: %w", err)
	}

	src := signal.Data()
	out := make([]float64, len(src))
	in := make([]complex128, n)
	spec := make([]complex128, n)
	res := make([]complex128, n)

	for base := 0; base < len(src); base += n {
		row := src[base : base+n]
		for k, v := range row {
			in[k] = complex(v, 0)
		}

		if err := plan.Forward(spec, in); err != nil {
			return nil, fmt.Errorf("gaussian filter: forward FFT failed: %w", err)
		}

		shifted := field.FFTShift1D(spec)
		for i := range shifted {
			shifted[i] *= complex(mask[i], 0)
		}

		if err := plan.Inverse(res, field.IFFTShift1D(shifted)); err != nil {
			return nil, fmt.Errorf("gaussian filter: inverse FFT failed: %w", err)
		}

		for k := range n {
			out[base+k] = real(res[k])
		}
	}

	return field.FromData(out, shape...)
}

// gaussian evaluates magnitude * exp(-(x-mean)^2 / (2*variance)).
func gaussian(x, magnitude, mean, variance float64) float64 {
	d := x - mean
	return magnitude * math.Exp(-d*d/(2*variance))
}
