// Package gridfilter derives low-pass filter settings from the numerical
// dispersion limits of a simulation grid and applies them to time series.
//
// A discrete spatial grid only supports frequencies up to
// f_max = k_max * c0 / (2*pi), where k_max is the largest supported
// wavenumber and c0 the slowest sound speed in the medium. Driving a
// simulation with source content above this limit produces dispersion
// artefacts, so input signals are low-pass filtered to a cutoff derived
// from the desired number of grid points per wavelength.
package gridfilter
