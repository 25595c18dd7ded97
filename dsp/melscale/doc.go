// Package melscale converts between linear frequency (Hz) and the mel
// perceptual pitch scale.
//
// The package implements the common 2595/700 mel formula:
//
//	mel = 2595 * log10(1 + f/700)
//	f   = 700 * (10^(mel/2595) - 1)
//
// Both directions are strictly increasing and exact inverses of each other
// up to floating-point rounding. [Points] derives mel-equidistant center
// frequencies within a band, the spacing rule used by mel filter banks.
package melscale
