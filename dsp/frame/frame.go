package frame

import "time"

// Frame is one analysis frame: a numeric payload plus positioning metadata.
//
// The payload meaning depends on the pipeline stage: time-domain samples
// after slicing, power-spectrum bins after spectral analysis, filter-bank
// energies after a mel bank. Metadata survives every stage unchanged.
type Frame struct {
	Data       []float64     // stage-dependent payload
	SampleRate int           // sample rate of the originating stream in Hz
	Index      int           // frame position within the stream, starting at 0
	Start      time.Duration // stream time of the first sample in the frame
}

// WithData returns a copy of the frame carrying data as its payload.
// All metadata fields are preserved; the receiver is not modified.
func (f Frame) WithData(data []float64) Frame {
	f.Data = data
	return f
}

// Processor transforms one frame into another. Implementations must not
// mutate the input frame or alias its payload in the returned frame.
type Processor interface {
	Process(Frame) Frame
}
