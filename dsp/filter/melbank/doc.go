// Package melbank provides mel-scale triangular filter banks for spectral
// feature extraction.
//
// A [Bank] reduces a power or energy spectrum to a small vector of
// perceptual band energies, the standard front-end stage for speech
// features such as MFCCs. Center frequencies are spaced uniformly on the
// mel scale: the band [minFreq, maxFreq] is divided into filterAmount+1
// equal mel intervals and the filterAmount interior points become the
// filter centers. Each filter is a triangle of unit area spanning from the
// previous center to the next, with the outermost filters extended to
// minFreq and maxFreq.
//
// Triangle weights are sampled at the spectrum bin resolution
//
//	step = (sampleRate/2) / energySpectrumSize
//
// and scaled to peak height 2/(right-left), so every triangle integrates
// to one regardless of its width.
//
// Banks are immutable after construction and safe for concurrent use; each
// call to Apply or Process works purely on caller-supplied buffers.
//
// Basic usage:
//
//	b, err := melbank.New(300, 8000, 26, 16000, 256)
//	if err != nil {
//	    // parameters are mutually incompatible
//	}
//	energies := b.Apply(powerSpectrum) // len == 26
package melbank
