package melbank

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Filter is one triangular weighting function over a contiguous half-open
// range of spectrum bins. Filters are immutable once built.
type Filter struct {
	sampleStart int
	sampleEnd   int
	weights     []float64
}

// SampleStart returns the first spectrum bin the filter covers.
func (f *Filter) SampleStart() int { return f.sampleStart }

// SampleEnd returns the bin index one past the last covered bin.
func (f *Filter) SampleEnd() int { return f.sampleEnd }

// Weights returns a copy of the per-bin weights. The result has length
// SampleEnd()-SampleStart(), one weight per covered bin.
func (f *Filter) Weights() []float64 {
	out := make([]float64, len(f.weights))
	copy(out, f.weights)
	return out
}

// Apply returns the weighted sum of the covered spectrum bins.
//
// The caller must guarantee len(spectrum) >= SampleEnd(); this is a hot
// inner loop and bounds are not re-validated per call.
func (f *Filter) Apply(spectrum []float64) float64 {
	return vecmath.DotProduct(spectrum[f.sampleStart:f.sampleEnd], f.weights)
}

// newFilter builds one unit-area triangular filter spanning
// [left, center, right] Hz, sampled at step Hz per bin. Bins at or beyond
// maxBins are cut off; only the zero-weight bin at the exact upper band
// edge can fall there.
func newFilter(left, center, right, step, liftFreq float64, maxBins int) (Filter, error) {
	leftStart := int(math.Floor(left/step)) + 1
	middle := int(math.Floor(center/step)) + 1
	rightEnd := int(math.Floor(right/step)) + 1

	if rightEnd > maxBins {
		rightEnd = maxBins
	}
	if middle > rightEnd {
		middle = rightEnd
	}

	totalWeights := rightEnd - leftStart
	if totalWeights <= 0 {
		return Filter{}, ErrNoUsableBins
	}

	// Peak height for unit area: 1/2 * (right-left) * height == 1.
	height := 2 / (right - left)
	weights := make([]float64, totalWeights)

	leftSize := middle - leftStart
	risingSlope := height / (center - left + liftFreq)
	for i := range leftSize {
		weights[i] = (float64(i+leftStart)*step - left + liftFreq) * risingSlope
	}

	fallingSlope := height / (right - center + liftFreq)
	for i := range rightEnd - middle {
		weights[leftSize+i] = (right + liftFreq - float64(i+middle)*step) * fallingSlope
	}

	return Filter{
		sampleStart: leftStart,
		sampleEnd:   rightEnd,
		weights:     weights,
	}, nil
}
