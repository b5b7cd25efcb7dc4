// Package field provides a small dense N-dimensional real array used by the
// spectral analysis and smoothing code, together with the axis-wise and
// N-dimensional Fourier transforms those algorithms need.
//
// Arrays are stored row-major and limited to four dimensions, matching the
// shapes produced by 1-D to 3-D simulation grids with an optional time axis.
// Transforms are backed by algo-fft plans; the inverse transform includes the
// 1/N normalisation.
package field
