package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
)

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// The squaring runs on SIMD kernels where available.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im := splitParts(bins)
	vecmath.Power(out, re, im)
	return out
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im := splitParts(bins)
	vecmath.Magnitude(out, re, im)
	return out
}

func splitParts(bins []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(bins))
	re, im = buf[:len(bins)], buf[len(bins):]

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}
