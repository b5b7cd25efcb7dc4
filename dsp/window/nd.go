package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/field"
)

// GenerateND builds a rotationally symmetric N-dimensional window over the
// given shape by evaluating the 1-D window profile along the normalised
// radial distance from the center sample.
//
// symmetric selects per axis whether the taps are laid out symmetrically
// (center at (n-1)/2) or periodically (center at n/2). Choosing symmetric
// taps for odd axis lengths and periodic taps for even lengths places the
// peak exactly on a sample, so the window's zero-frequency gain after an
// ifftshift is exactly 1. A nil symmetric slice selects symmetric taps on
// every axis.
func GenerateND(t Type, shape []int, symmetric []bool, opts ...Option) (*field.Field, error) {
	out, err := field.New(shape...)
	if err != nil {
		return nil, err
	}

	if symmetric == nil {
		symmetric = make([]bool, len(shape))
		for k := range symmetric {
			symmetric[k] = true
		}
	}

	if len(symmetric) != len(shape) {
		return nil, fmt.Errorf("symmetry flags length %d does not match %d dims: %w",
			len(symmetric), len(shape), core.ErrInvalidArgument)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	center := make([]float64, len(shape))
	halfLen := make([]float64, len(shape))
	for k, n := range shape {
		if symmetric[k] {
			center[k] = float64(n-1) / 2
		} else {
			center[k] = float64(n) / 2
		}
		halfLen[k] = center[k]
	}

	data := out.Data()
	idx := make([]int, len(shape))
	for i := range data {
		r2 := 0.0
		for k := range shape {
			if halfLen[k] == 0 {
				continue
			}
			d := (float64(idx[k]) - center[k]) / halfLen[k]
			r2 += d * d
		}

		r := math.Min(math.Sqrt(r2), 1)
		data[i] = evalWindow(t, 0.5+r/2, cfg)

		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
		}
	}

	return out, nil
}
