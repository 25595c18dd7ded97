package melscale_test

import (
	"fmt"

	"github.com/cwbudde/algo-mel/dsp/melscale"
)

func ExampleLinearToMel() {
	// 1000 Hz sits at roughly 1000 mel by construction of the scale.
	fmt.Printf("%.1f\n", melscale.LinearToMel(1000))
	// Output:
	// 1000.0
}

func ExamplePoints() {
	// Two mel-equidistant center frequencies between 0 Hz and 4 kHz.
	for _, p := range melscale.Points(0, 4000, 2) {
		fmt.Printf("%.4f\n", p)
	}
	// Output:
	// 620.5798
	// 1791.3300
}
