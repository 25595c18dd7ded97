package melbank

import (
	"errors"
	"fmt"
)

// ErrNoUsableBins reports a filter whose frequency span covers no spectrum
// bin at the configured resolution. The bank parameters are mutually
// incompatible: either the frequency range is too narrow or
// energySpectrumSize is too small for the requested filter amount.
var ErrNoUsableBins = errors.New("no frequency value within filter bank limits")

var (
	errMinFreqNegative    = errors.New("minimum frequency negative")
	errMaxFreqNonPositive = errors.New("maximum frequency non-positive")
	errMinNotBelowMax     = errors.New("min must be smaller than max")
)

func validateParams(minFreq, maxFreq float64, filterAmount, sampleRate, energySpectrumSize int) error {
	if minFreq < 0 {
		return errMinFreqNegative
	}
	if maxFreq <= 0 {
		return errMaxFreqNonPositive
	}
	if minFreq >= maxFreq {
		return errMinNotBelowMax
	}
	if filterAmount <= 0 {
		return fmt.Errorf("filter amount must be > 0: %d", filterAmount)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}
	if energySpectrumSize <= 0 {
		return fmt.Errorf("energy spectrum size must be > 0: %d", energySpectrumSize)
	}
	return nil
}
