// Package smooth provides frequency-domain smoothing of spatial
// distributions and narrowband Gaussian filtering of time series.
//
// Smooth multiplies the spectrum of a spatial field with a rotationally
// symmetric window to suppress the high wavenumbers that would otherwise
// alias on a discrete grid, which is the standard preparation step for
// source and medium distributions before a pseudospectral simulation.
package smooth
