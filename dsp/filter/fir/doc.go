// Package fir designs and applies finite-impulse-response filters.
//
// Coefficients are synthesised with the Kaiser windowed-sinc method: the
// filter order follows from the requested stop-band attenuation and
// transition width, a high-pass is a spectrally inverted low-pass at the
// mirrored cutoff, and a band-pass is two sequential filtering passes
// (low-pass at the upper cutoff, then high-pass at the lower). Filters are
// applied causally through a direct-form delay line, or with zero phase by
// running the same filter forward and backward.
package fir
