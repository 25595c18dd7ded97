package melbank

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-mel/dsp/frame"
	"github.com/cwbudde/algo-mel/dsp/melscale"
)

// Bank is an immutable mel-scale triangular filter bank. All filters are
// built at construction time; Apply and Process touch no shared mutable
// state and are safe for concurrent use.
type Bank struct {
	minFreq            float64
	maxFreq            float64
	sampleRate         int
	energySpectrumSize int
	liftFreq           float64

	centers []float64
	filters []Filter
}

// New builds a bank of filterAmount triangular filters covering
// [minFreq, maxFreq] Hz on a spectrum of energySpectrumSize usable bins
// (typically FFT size / 2) at the given sample rate.
//
// Construction fails with a configuration error when the frequency bounds
// are negative, non-positive, or inverted, and with [ErrNoUsableBins] when
// some filter spans no spectrum bin at the configured resolution.
func New(minFreq, maxFreq float64, filterAmount, sampleRate, energySpectrumSize int, opts ...Option) (*Bank, error) {
	if err := validateParams(minFreq, maxFreq, filterAmount, sampleRate, energySpectrumSize); err != nil {
		return nil, err
	}

	cfg := defaultBankConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	centers := melscale.Points(minFreq, maxFreq, filterAmount)
	step := (float64(sampleRate) / 2) / float64(energySpectrumSize)

	filters := make([]Filter, filterAmount)
	for i := range filters {
		left := minFreq
		if i > 0 {
			left = centers[i-1]
		}

		right := maxFreq
		if i < filterAmount-1 {
			right = centers[i+1]
		}

		f, err := newFilter(left, centers[i], right, step, cfg.liftFreq, energySpectrumSize)
		if err != nil {
			return nil, fmt.Errorf("melbank: filter %d (%.1f Hz): %w", i, centers[i], err)
		}

		filters[i] = f
	}

	return &Bank{
		minFreq:            minFreq,
		maxFreq:            maxFreq,
		sampleRate:         sampleRate,
		energySpectrumSize: energySpectrumSize,
		liftFreq:           cfg.liftFreq,
		centers:            centers,
		filters:            filters,
	}, nil
}

// Filters returns the filters in ascending center-frequency order.
// The slice is read-only.
func (b *Bank) Filters() []Filter { return b.filters }

// NumFilters returns the number of filters.
func (b *Bank) NumFilters() int { return len(b.filters) }

// CenterFreqs returns the linear center frequencies in Hz, index-aligned
// with Filters(). The slice is read-only.
func (b *Bank) CenterFreqs() []float64 { return b.centers }

// MinFreq returns the lower band edge in Hz.
func (b *Bank) MinFreq() float64 { return b.minFreq }

// MaxFreq returns the upper band edge in Hz.
func (b *Bank) MaxFreq() float64 { return b.maxFreq }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() int { return b.sampleRate }

// EnergySpectrumSize returns the number of usable spectrum bins.
func (b *Bank) EnergySpectrumSize() int { return b.energySpectrumSize }

// LiftFreq returns the slope-denominator offset in Hz.
func (b *Bank) LiftFreq() float64 { return b.liftFreq }

// Apply runs every filter over the spectrum and returns the band energies,
// index-aligned with Filters().
//
// The caller must guarantee len(spectrum) >= EnergySpectrumSize(); bounds
// are not re-validated per call.
func (b *Bank) Apply(spectrum []float64) []float64 {
	return b.ApplyTo(nil, spectrum)
}

// ApplyTo is like Apply but reuses dst when it has sufficient capacity.
func (b *Bank) ApplyTo(dst, spectrum []float64) []float64 {
	dst = core.EnsureLen(dst, len(b.filters))
	for i := range b.filters {
		dst[i] = b.filters[i].Apply(spectrum)
	}
	return dst
}

// Process applies the bank to the frame's spectrum payload and returns a
// new frame carrying the band energies. All frame metadata is preserved
// and the input frame is not modified.
func (b *Bank) Process(fr frame.Frame) frame.Frame {
	return fr.WithData(b.Apply(fr.Data))
}

var _ frame.Processor = (*Bank)(nil)
