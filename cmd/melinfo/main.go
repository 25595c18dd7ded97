// Command melinfo prints the layout of a mel filter bank and optionally
// runs a synthetic tone through the frame/spectrum/filter-bank pipeline.
//
// Usage:
//
//	melinfo [flags]
//
// Examples:
//
//	melinfo
//	melinfo -min 300 -max 8000 -filters 26 -rate 16000 -bins 256
//	melinfo -filters 40 -tone 1000
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-mel/dsp/filter/melbank"
	"github.com/cwbudde/algo-mel/dsp/frame"
	"github.com/cwbudde/algo-mel/dsp/spectrum"
)

func main() {
	var (
		minFreq = flag.Float64("min", 0, "lower band edge in Hz")
		maxFreq = flag.Float64("max", 8000, "upper band edge in Hz")
		filters = flag.Int("filters", 26, "number of filters")
		rate    = flag.Int("rate", 16000, "sample rate in Hz")
		bins    = flag.Int("bins", 256, "usable spectrum bins (FFT size / 2)")
		lift    = flag.Float64("lift", 0, "slope denominator offset in Hz")
		tone    = flag.Float64("tone", 0, "feed a sine of this frequency through the pipeline")
	)

	flag.Parse()

	bank, err := melbank.New(*minFreq, *maxFreq, *filters, *rate, *bins, melbank.WithLiftFreq(*lift))
	if err != nil {
		fmt.Fprintln(os.Stderr, "melinfo:", err)
		os.Exit(1)
	}

	printLayout(bank)

	if *tone > 0 {
		if err := runTone(bank, *tone); err != nil {
			fmt.Fprintln(os.Stderr, "melinfo:", err)
			os.Exit(1)
		}
	}
}

func printLayout(bank *melbank.Bank) {
	fmt.Printf("mel filter bank: %d filters, %.1f-%.1f Hz, %d bins at %d Hz\n\n",
		bank.NumFilters(), bank.MinFreq(), bank.MaxFreq(),
		bank.EnergySpectrumSize(), bank.SampleRate())

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "filter\tcenter [Hz]\tbins\twidth\tweight sum")

	for i, f := range bank.Filters() {
		sum := 0.0
		for _, v := range f.Weights() {
			sum += v
		}

		fmt.Fprintf(w, "%d\t%.1f\t[%d, %d)\t%d\t%.6f\n",
			i, bank.CenterFreqs()[i], f.SampleStart(), f.SampleEnd(),
			f.SampleEnd()-f.SampleStart(), sum)
	}

	w.Flush()
}

// runTone pushes one frame of a bin-aligned sine through slicing, spectral
// analysis and the filter bank, then prints the resulting band energies.
func runTone(bank *melbank.Bank, freqHz float64) error {
	fftSize := 2 * bank.EnergySpectrumSize()

	slicer, err := frame.NewSlicer(fftSize, bank.SampleRate())
	if err != nil {
		return err
	}

	analyzer, err := spectrum.NewAnalyzer(fftSize)
	if err != nil {
		return err
	}

	samples := make([]float64, fftSize)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freqHz * float64(i) / float64(bank.SampleRate()))
	}

	frames := slicer.Split(samples)
	if len(frames) == 0 {
		return fmt.Errorf("tone of %d samples produced no frames", len(samples))
	}

	power, err := analyzer.Process(frames[0].Data)
	if err != nil {
		return err
	}

	out := bank.Process(frames[0].WithData(power))

	fmt.Printf("\n%.1f Hz tone energies:\n", freqHz)

	loudest := 0
	for i, e := range out.Data {
		fmt.Printf("  filter %2d (%7.1f Hz): %g\n", i, bank.CenterFreqs()[i], e)
		if e > out.Data[loudest] {
			loudest = i
		}
	}

	fmt.Printf("loudest: filter %d at %.1f Hz\n", loudest, bank.CenterFreqs()[loudest])
	return nil
}
