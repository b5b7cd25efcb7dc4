package smooth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/field"
)

func TestGaussianFilterExtractsBand(t *testing.T) {
	const (
		fs = 1000.0
		n  = 1000
	)

	// 100 Hz and 300 Hz tones, both on exact frequency bins
	data := make([]float64, n)
	want := make([]float64, n)
	for i := range data {
		ti := float64(i) / fs
		want[i] = math.Sin(2 * math.Pi * 100 * ti)
		data[i] = want[i] + math.Sin(2*math.Pi*300*ti)
	}

	out, err := GaussianFilter(field.FromSlice(data), fs, 100, 100)
	require.NoError(t, err)

	// 100% bandwidth at 100 Hz keeps the centered tone and rejects 300 Hz
	for i := range want {
		require.InDelta(t, want[i], out.Data()[i], 1e-3, "sample %d", i)
	}
}

func TestGaussianFilterPerRow(t *testing.T) {
	const (
		fs = 1000.0
		n  = 500
	)

	rows := [][]float64{make([]float64, n), make([]float64, n)}
	for i := range n {
		ti := float64(i) / fs
		rows[0][i] = math.Sin(2 * math.Pi * 100 * ti)
		rows[1][i] = math.Sin(2 * math.Pi * 300 * ti)
	}

	in, err := field.From2D(rows)
	require.NoError(t, err)

	out, err := GaussianFilter(in, fs, 100, 100)
	require.NoError(t, err)
	require.Equal(t, []int{2, n}, out.Shape())

	od := out.Data()
	for i := range n {
		require.InDelta(t, rows[0][i], od[i], 1e-3, "in-band row sample %d", i)
	}

	var sum float64
	for _, v := range od[n:] {
		sum += v * v
	}
	require.Less(t, math.Sqrt(sum/float64(n)), 1e-3)
}

func TestGaussianFilterBandwidthControlsRejection(t *testing.T) {
	const (
		fs = 1000.0
		n  = 1000
	)

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 150 * float64(i) / fs)
	}
	in := field.FromSlice(data)

	// a narrow filter at 100 Hz attenuates a 150 Hz tone harder than a wide one
	narrow, err := GaussianFilter(in, fs, 100, 20)
	require.NoError(t, err)
	wide, err := GaussianFilter(in, fs, 100, 200)
	require.NoError(t, err)

	require.Less(t, narrow.MaxAbs(), 1e-6)
	require.Greater(t, wide.MaxAbs(), 0.1)
}

func TestGaussianFilterErrors(t *testing.T) {
	sig := field.FromSlice([]float64{1, 2, 3, 4})

	_, err := GaussianFilter(nil, 1000, 100, 100)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = GaussianFilter(sig, 0, 100, 100)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = GaussianFilter(sig, 1000, 0, 100)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = GaussianFilter(sig, 1000, 100, 0)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}
