package melscale

import "math"

const (
	melFactor    = 2595.0
	cornerFreqHz = 700.0
)

// LinearToMel converts a frequency in Hz to mel scale.
//
// The caller must pass freqHz >= 0; negative input is not checked and
// produces a meaningless result.
func LinearToMel(freqHz float64) float64 {
	return melFactor * math.Log10(1+freqHz/cornerFreqHz)
}

// MelToLinear converts a mel value back to linear frequency in Hz.
// It is the inverse of [LinearToMel].
func MelToLinear(mel float64) float64 {
	return cornerFreqHz * (math.Pow(10, mel/melFactor) - 1)
}

// Points returns n frequencies in Hz that are equally spaced on the mel
// scale strictly between minHz and maxHz. The band is divided into n+1
// equal mel intervals and the n interior points are returned, excluding
// both endpoints.
//
// Returns nil if n <= 0 or maxHz <= minHz.
func Points(minHz, maxHz float64, n int) []float64 {
	if n <= 0 || maxHz <= minHz {
		return nil
	}

	minMel := LinearToMel(minHz)
	maxMel := LinearToMel(maxHz)
	interval := (maxMel - minMel) / float64(n+1)

	out := make([]float64, n)
	for i := range out {
		out[i] = MelToLinear(minMel + float64(i+1)*interval)
	}

	return out
}
