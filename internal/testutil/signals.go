package testutil

import "math"

// Tone generates a unit-amplitude sine at freqHz sampled at sampleRate.
func Tone(freqHz, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}

// MixedTones sums unit-amplitude sines at the given frequencies, one test
// signal for pass/stop band checks.
func MixedTones(sampleRate float64, n int, freqs ...float64) []float64 {
	out := make([]float64, n)
	for _, f := range freqs {
		step := 2 * math.Pi * f / sampleRate
		for i := range out {
			out[i] += math.Sin(step * float64(i))
		}
	}
	return out
}

// GaussianPulse generates a unit-peak Gaussian pulse centered on the given
// sample, with width in samples.
func GaussianPulse(center, width float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := (float64(i) - center) / width
		out[i] = math.Exp(-x * x)
	}
	return out
}

// Ones returns n samples all set to 1.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
