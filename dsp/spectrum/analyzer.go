package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Analyzer turns time-domain sample frames into one-sided power spectra.
//
// The analyzer owns an FFT plan of a fixed size and reuses its scratch
// buffers across calls, so a single Analyzer must not be shared between
// goroutines. Construct one per worker instead.
type Analyzer struct {
	fftSize int
	plan    *algofft.Plan[complex128]

	in  []complex128
	out []complex128
}

// NewAnalyzer creates an analyzer for the given FFT size. The size must be
// positive and accepted by the FFT backend (typically a power of two);
// frames shorter than fftSize are zero-padded.
func NewAnalyzer(fftSize int) (*Analyzer, error) {
	if fftSize <= 0 {
		return nil, fmt.Errorf("spectrum: fft size must be > 0: %d", fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	return &Analyzer{
		fftSize: fftSize,
		plan:    plan,
		in:      make([]complex128, fftSize),
		out:     make([]complex128, fftSize),
	}, nil
}

// FFTSize returns the transform size.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// Bins returns the number of usable one-sided spectrum bins, fftSize/2.
// This is the energySpectrumSize a downstream filter bank should be
// constructed with.
func (a *Analyzer) Bins() int { return a.fftSize / 2 }

// Process transforms one frame of samples and returns its one-sided power
// spectrum of Bins() values. Frames longer than the FFT size are rejected;
// shorter frames are zero-padded.
func (a *Analyzer) Process(samples []float64) ([]float64, error) {
	if len(samples) > a.fftSize {
		return nil, fmt.Errorf("spectrum: frame of %d samples exceeds FFT size %d", len(samples), a.fftSize)
	}

	for i := range a.in {
		if i < len(samples) {
			a.in[i] = complex(samples[i], 0)
		} else {
			a.in[i] = 0
		}
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Power(a.out[:a.fftSize/2]), nil
}
