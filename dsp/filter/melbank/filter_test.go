package melbank

import (
	"errors"
	"math"
	"testing"
)

func TestNewFilter_KnownTriangle(t *testing.T) {
	f, err := newFilter(0, 100, 200, 25, 0, 1024)
	if err != nil {
		t.Fatal(err)
	}

	if f.SampleStart() != 1 || f.SampleEnd() != 9 {
		t.Fatalf("bins [%d, %d), want [1, 9)", f.SampleStart(), f.SampleEnd())
	}

	// height = 2/200 = 0.01; rising 25, 50, 75, 100 Hz then falling
	// 75, 50, 25, 0 Hz above bin positions.
	want := []float64{0.0025, 0.005, 0.0075, 0.01, 0.0075, 0.005, 0.0025, 0}
	got := f.Weights()
	if len(got) != len(want) {
		t.Fatalf("got %d weights, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("weight %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Unit area at this resolution: sum(w) * step == 1.
	sum := 0.0
	for _, w := range got {
		sum += w
	}

	if math.Abs(sum*25-1) > 1e-12 {
		t.Errorf("area = %v, want 1", sum*25)
	}
}

func TestNewFilter_ZeroWidth(t *testing.T) {
	// A span narrower than one bin yields no usable weights.
	_, err := newFilter(10, 12, 14, 25, 0, 1024)
	if !errors.Is(err, ErrNoUsableBins) {
		t.Fatalf("err = %v, want ErrNoUsableBins", err)
	}
}

func TestNewFilter_ClampsToSpectrum(t *testing.T) {
	// right lands exactly on the bin past the spectrum end; the cut-off
	// bin carries weight zero, so the energy is unaffected.
	f, err := newFilter(0, 100, 200, 25, 0, 8)
	if err != nil {
		t.Fatal(err)
	}

	if f.SampleEnd() != 8 {
		t.Fatalf("SampleEnd = %d, want 8", f.SampleEnd())
	}

	if n := len(f.Weights()); n != 7 {
		t.Fatalf("got %d weights, want 7", n)
	}
}

func TestFilter_Apply(t *testing.T) {
	f, err := newFilter(0, 100, 200, 25, 0, 1024)
	if err != nil {
		t.Fatal(err)
	}

	spectrum := make([]float64, 16)
	for i := range spectrum {
		spectrum[i] = float64(i)
	}

	want := 0.0
	for i, w := range f.Weights() {
		want += spectrum[f.SampleStart()+i] * w
	}

	if got := f.Apply(spectrum); math.Abs(got-want) > 1e-12 {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}
