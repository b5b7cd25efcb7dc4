package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/field"
	"github.com/cwbudde/acoustic-dsp/dsp/window"
)

// Option configures Smooth.
type Option func(*config)

type config struct {
	windowType window.Type
	restoreMax bool
}

func defaultConfig() config {
	return config{windowType: window.TypeBlackman}
}

// WithWindowType selects the smoothing window shape (default Blackman).
func WithWindowType(t window.Type) Option {
	return func(c *config) { c.windowType = t }
}

// WithRestoreMax rescales the smoothed field so its peak absolute value
// matches the input's.
func WithRestoreMax() Option {
	return func(c *config) { c.restoreMax = true }
}

// Smooth filters a spatial field by multiplying its N-dimensional spectrum
// with a rotationally symmetric window.
//
// The window taps are laid out symmetrically on odd axes and periodically on
// even axes, which places the window peak exactly on a sample. After the
// ifftshift that aligns the peak with the zero-frequency bin the window's DC
// gain is then exactly one, so the mean of the field is preserved.
func Smooth(a *field.Field, opts ...Option) (*field.Field, error) {
	if a == nil || a.NumElements() == 0 {
		return nil, fmt.Errorf("smooth: input field must not be empty: %w", core.ErrInvalidInput)
	}
	for _, v := range a.Data() {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("smooth: input field must be finite: %w", core.ErrInvalidInput)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	shape := a.Shape()
	symmetric := make([]bool, len(shape))
	for k, n := range shape {
		symmetric[k] = n%2 == 1
	}

	win, err := window.GenerateND(cfg.windowType, shape, symmetric)
	if err != nil {
		return nil, err
	}

	// discard machine-precision negative window values
	wd := win.Data()
	for i, v := range wd {
		wd[i] = math.Abs(v)
	}

	spec, err := field.FFTN(a)
	if err != nil {
		return nil, err
	}

	mask := field.IFFTShiftN(win).Data()
	sd := spec.Data()
	for i := range sd {
		sd[i] *= complex(mask[i], 0)
	}

	inv, err := field.IFFTN(spec)
	if err != nil {
		return nil, err
	}
	out := inv.Real()

	if cfg.restoreMax {
		if peak := out.MaxAbs(); peak > 0 {
			scale := a.MaxAbs() / peak
			od := out.Data()
			for i := range od {
				od[i] *= scale
			}
		}
	}

	return out, nil
}
