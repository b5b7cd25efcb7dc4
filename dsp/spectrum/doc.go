// Package spectrum computes single-sided amplitude and phase spectra of
// sampled pressure traces and extracts amplitude/phase at a target
// frequency.
//
// The single-sided representation keeps only non-negative frequency bins;
// mirrored negative-frequency content is folded in by doubling every bin
// except DC and, for even FFT lengths, Nyquist. Spectra are normalised by
// the analysed signal length and the analysis window's coherent gain.
package spectrum
