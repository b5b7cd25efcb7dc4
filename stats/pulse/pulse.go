// Package pulse provides width measurements of pulse-shaped signals.
package pulse

import (
	"fmt"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

// Width describes the full width at half maximum of a pulse together with
// the interpolated positions of its leading and trailing edges.
type Width struct {
	Value     float64
	LeftEdge  float64
	RightEdge float64
}

// FullWidthHalfMax measures the full width at half maximum of a positive
// 1-D function sampled at the given positions. The half-maximum edge
// positions are located by linear interpolation between the samples
// bracketing each crossing.
func FullWidthHalfMax(values, positions []float64) (Width, error) {
	if len(values) != len(positions) {
		return Width{}, fmt.Errorf("pulse: values and positions must have equal length, have %d and %d: %w",
			len(values), len(positions), core.ErrInvalidInput)
	}
	if len(values) < 3 {
		return Width{}, fmt.Errorf("pulse: need at least 3 samples, have %d: %w", len(values), core.ErrInvalidInput)
	}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	half := peak / 2

	// scan for sign changes of values-half; the last sample pair is excluded
	// from the comparison range
	var edges []float64
	for i := 0; i+2 < len(values) && len(edges) < 2; i++ {
		if sign(values[i]-half) == sign(values[i+1]-half) {
			continue
		}
		edges = append(edges, interpolateEdge(positions, values, i, half))
	}

	if len(edges) < 2 {
		return Width{}, fmt.Errorf("pulse: found %d half-maximum crossings, need 2: %w", len(edges), core.ErrInvalidInput)
	}

	return Width{
		Value:     edges[1] - edges[0],
		LeftEdge:  edges[0],
		RightEdge: edges[1],
	}, nil
}

// interpolateEdge locates the half-maximum crossing between samples i and
// i+1 by linear interpolation.
func interpolateEdge(x, y []float64, i int, half float64) float64 {
	return x[i] + (x[i+1]-x[i])*(half-y[i])/(y[i+1]-y[i])
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
