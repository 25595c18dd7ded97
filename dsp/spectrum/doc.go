// Package spectrum converts complex FFT output and time-domain frames into
// real-valued power or magnitude spectra, the input representation consumed
// by filter banks.
//
// [Power] and [Magnitude] operate on raw complex bins. [Analyzer] bundles
// an FFT plan with the conversion, turning a windowed sample frame into a
// one-sided power spectrum of fftSize/2 usable bins.
package spectrum
