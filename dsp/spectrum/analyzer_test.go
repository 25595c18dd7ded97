package spectrum

import (
	"math"
	"testing"
)

func TestAnalyzer_Bins(t *testing.T) {
	a, err := NewAnalyzer(512)
	if err != nil {
		t.Fatal(err)
	}

	if a.FFTSize() != 512 || a.Bins() != 256 {
		t.Fatalf("FFTSize/Bins = %d/%d, want 512/256", a.FFTSize(), a.Bins())
	}

	out, err := a.Process(make([]float64, 512))
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 256 {
		t.Fatalf("got %d bins, want 256", len(out))
	}
}

func TestAnalyzer_DCConcentration(t *testing.T) {
	a, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	samples := make([]float64, 256)
	for i := range samples {
		samples[i] = 1
	}

	out, err := a.Process(samples)
	if err != nil {
		t.Fatal(err)
	}

	// A constant signal carries all its energy in bin 0, independent of
	// the FFT normalization convention.
	if out[0] <= 0 {
		t.Fatalf("DC bin = %v, want > 0", out[0])
	}

	for i := 1; i < len(out); i++ {
		if out[i] > out[0]*1e-12 {
			t.Errorf("bin %d = %v, want ~0 (DC bin %v)", i, out[i], out[0])
		}
	}
}

func TestAnalyzer_SinePeakBin(t *testing.T) {
	const (
		size = 256
		k    = 8 // bin-aligned tone
	)

	a, err := NewAnalyzer(size)
	if err != nil {
		t.Fatal(err)
	}

	samples := make([]float64, size)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * k * float64(i) / size)
	}

	out, err := a.Process(samples)
	if err != nil {
		t.Fatal(err)
	}

	peak := 0
	for i := 1; i < len(out); i++ {
		if out[i] > out[peak] {
			peak = i
		}
	}

	if peak != k {
		t.Fatalf("peak at bin %d, want %d", peak, k)
	}
}

func TestAnalyzer_ZeroPadsShortFrames(t *testing.T) {
	a, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	out, err := a.Process(make([]float64, 100))
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 128 {
		t.Fatalf("got %d bins, want 128", len(out))
	}
}

func TestAnalyzer_RejectsOversizedFrame(t *testing.T) {
	a, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.Process(make([]float64, 257)); err == nil {
		t.Error("oversized frame: expected error")
	}
}

func TestNewAnalyzer_Invalid(t *testing.T) {
	if _, err := NewAnalyzer(0); err == nil {
		t.Error("fft size 0: expected error")
	}
}
