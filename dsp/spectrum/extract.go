package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/field"
	"github.com/cwbudde/acoustic-dsp/dsp/window"
)

// Extraction holds amplitude and phase at the spectrum bin closest to the
// requested frequency, one value per remaining channel in row-major order.
type Extraction struct {
	Amplitude []float64
	Phase     []float64

	// Frequency is the actual frequency of the selected bin.
	Frequency float64
}

// Scalar returns the single amplitude/phase pair of a one-channel
// extraction. ok is false when more than one channel remains.
func (e *Extraction) Scalar() (amp, phase float64, ok bool) {
	if len(e.Amplitude) != 1 {
		return 0, 0, false
	}
	return e.Amplitude[0], e.Phase[0], true
}

// ExtractOption configures ExtractAmpPhase.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	axis    int
	padding int
	window  window.Type
}

func defaultExtractConfig() extractConfig {
	return extractConfig{
		axis:    AxisAuto,
		padding: 3,
		window:  window.TypeHann,
	}
}

// WithExtractionAxis selects the time axis instead of auto-resolution.
func WithExtractionAxis(axis int) ExtractOption {
	return func(c *extractConfig) {
		c.axis = axis
	}
}

// WithFFTPadding sets the zero-padding factor applied to the transform
// length (default 3).
func WithFFTPadding(factor int) ExtractOption {
	return func(c *extractConfig) {
		if factor > 0 {
			c.padding = factor
		}
	}
}

// WithExtractionWindow selects the analysis window (default Hann).
func WithExtractionWindow(t window.Type) ExtractOption {
	return func(c *extractConfig) {
		c.window = t
	}
}

// ExtractAmpPhase reports the amplitude and phase of data at the frequency
// bin closest to sourceFreq.
//
// The time axis defaults to the highest non-singleton dimension, with a
// column vector treated as a single time trace. The data is windowed before
// a zero-padded rectangular-window spectrum is computed, and the amplitude
// is corrected for the window's coherent gain.
func ExtractAmpPhase(data *field.Field, sampleRate, sourceFreq float64, opts ...ExtractOption) (*Extraction, error) {
	if data == nil || data.NumElements() <= 1 {
		return nil, fmt.Errorf("extraction input signal cannot be scalar: %w", core.ErrInvalidInput)
	}

	cfg := defaultExtractConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	axis, err := resolveExtractionAxis(data, cfg.axis)
	if err != nil {
		return nil, err
	}

	// extraction uses the symmetric window form, unlike the analyzer
	n := data.Size(axis)
	win := window.Generate(cfg.window, n)
	coherentGain, err := window.Gain(win)
	if err != nil {
		return nil, err
	}

	windowed := data.Clone()
	applyWindowAlongAxis(windowed, axis, win)

	res, err := Compute(windowed, sampleRate,
		WithAxis(axis),
		WithFFTLength(cfg.padding*n))
	if err != nil {
		return nil, err
	}

	fIndex := closestIndex(res.Frequencies, sourceFreq)

	shape := res.Amplitude.Shape()
	stride := field.Stride(shape, axis)
	ampData := res.Amplitude.Data()
	phaseData := res.Phase.Data()

	var amp, phase []float64
	field.ForEachLine(shape, axis, func(base int) {
		amp = append(amp, ampData[base+fIndex*stride]/coherentGain)
		phase = append(phase, phaseData[base+fIndex*stride])
	})

	return &Extraction{
		Amplitude: amp,
		Phase:     phase,
		Frequency: res.Frequencies[fIndex],
	}, nil
}

// resolveExtractionAxis maps AxisAuto to the highest non-singleton
// dimension, treating an (n, 1) column vector as a single time trace.
func resolveExtractionAxis(data *field.Field, axis int) (int, error) {
	if axis != AxisAuto {
		if axis < 0 || axis >= data.Dims() {
			return 0, fmt.Errorf("time axis %d out of range for %d dims: %w", axis, data.Dims(), core.ErrInvalidInput)
		}
		return axis, nil
	}

	if data.Dims() == 2 && data.Size(1) == 1 {
		return 0, nil
	}

	for k := data.Dims() - 1; k >= 0; k-- {
		if data.Size(k) > 1 {
			return k, nil
		}
	}
	return 0, fmt.Errorf("all dimensions are singleton, unable to determine time axis: %w", core.ErrInvalidInput)
}

// closestIndex returns the index of the value nearest to target, taking the
// first occurrence on ties.
func closestIndex(values []float64, target float64) int {
	best := 0
	bestDiff := math.Inf(1)
	for i, v := range values {
		if d := math.Abs(v - target); d < bestDiff {
			bestDiff = d
			best = i
		}
	}
	return best
}
