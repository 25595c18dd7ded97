package frame

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Slicer splits a sample stream into overlapping, windowed analysis frames.
type Slicer struct {
	frameLen   int
	hop        int
	sampleRate int
	coeffs     []float64
}

type slicerConfig struct {
	hop        int
	windowType window.Type
}

// SlicerOption configures a Slicer.
type SlicerOption func(*slicerConfig)

// WithHopSize sets the step between consecutive frame starts in samples.
// Defaults to half the frame length.
func WithHopSize(n int) SlicerOption {
	return func(cfg *slicerConfig) {
		if n > 0 {
			cfg.hop = n
		}
	}
}

// WithWindow sets the analysis window applied to each frame.
// Defaults to Hamming.
func WithWindow(t window.Type) SlicerOption {
	return func(cfg *slicerConfig) {
		cfg.windowType = t
	}
}

// NewSlicer creates a slicer producing frames of frameLen samples from a
// stream at the given sample rate.
func NewSlicer(frameLen, sampleRate int, opts ...SlicerOption) (*Slicer, error) {
	if frameLen <= 0 {
		return nil, fmt.Errorf("frame: frame length must be > 0: %d", frameLen)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("frame: sample rate must be > 0: %d", sampleRate)
	}

	cfg := slicerConfig{
		hop:        frameLen / 2,
		windowType: window.TypeHamming,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.hop <= 0 {
		cfg.hop = 1
	}

	return &Slicer{
		frameLen:   frameLen,
		hop:        cfg.hop,
		sampleRate: sampleRate,
		coeffs:     window.Generate(cfg.windowType, frameLen),
	}, nil
}

// FrameLen returns the frame length in samples.
func (s *Slicer) FrameLen() int { return s.frameLen }

// HopSize returns the step between consecutive frame starts in samples.
func (s *Slicer) HopSize() int { return s.hop }

// Split cuts samples into windowed frames. Trailing samples that do not
// fill a whole frame are discarded. Each frame owns its payload; the input
// slice is not retained.
func (s *Slicer) Split(samples []float64) []Frame {
	if len(samples) < s.frameLen {
		return nil
	}

	numFrames := 1 + (len(samples)-s.frameLen)/s.hop
	frames := make([]Frame, numFrames)

	for i := range frames {
		start := i * s.hop
		data := make([]float64, s.frameLen)
		vecmath.MulBlock(data, samples[start:start+s.frameLen], s.coeffs)

		frames[i] = Frame{
			Data:       data,
			SampleRate: s.sampleRate,
			Index:      i,
			Start:      time.Duration(start) * time.Second / time.Duration(s.sampleRate),
		}
	}

	return frames
}

// PreEmphasize applies the first-order high-pass y[n] = x[n] - alpha*x[n-1]
// and returns the result as a new slice. A typical alpha for speech front
// ends is 0.97.
func PreEmphasize(samples []float64, alpha float64) []float64 {
	if len(samples) == 0 {
		return nil
	}

	out := make([]float64, len(samples))
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - alpha*samples[i-1]
	}

	return out
}
