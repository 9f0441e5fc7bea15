package flux

import (
	"math"
	"testing"
)

func TestPowerSpectrumTonePeak(t *testing.T) {
	n := 64
	bin := 4

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(bin) * float64(i) / float64(n))
	}

	power, err := PowerSpectrum(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(power) != n/2+1 {
		t.Fatalf("bins = %d, want %d", len(power), n/2+1)
	}

	peak := 0
	for k := 1; k < len(power); k++ {
		if power[k] > power[peak] {
			peak = k
		}
	}

	// Hann windowing spreads the tone across adjacent bins.
	if peak < bin-1 || peak > bin+1 {
		t.Fatalf("peak at bin %d, want near %d", peak, bin)
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if _, err := PowerSpectrum(nil); err == nil {
		t.Fatal("expected error for empty input")
	}

	allNaN := []float64{math.NaN(), math.NaN()}
	if _, err := PowerSpectrum(allNaN); err == nil {
		t.Fatal("expected error for all-NaN input")
	}
}

func TestPowerSpectrumSkipsNonFinite(t *testing.T) {
	data := make([]float64, 70)
	for i := range data {
		data[i] = 1
	}
	data[3] = math.NaN()
	data[10] = math.Inf(1)

	power, err := PowerSpectrum(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 68 finite samples pad to 128 bins of fft, 65 one-sided.
	if len(power) != 65 {
		t.Fatalf("bins = %d, want 65", len(power))
	}

	for k, p := range power {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("non-finite power at bin %d", k)
		}
	}
}

func TestHighFrequencyPowerFraction(t *testing.T) {
	n := 256

	smooth := make([]float64, n)
	alternating := make([]float64, n)
	for i := range smooth {
		smooth[i] = 1 + 0.1*math.Sin(2*math.Pi*float64(i)/float64(n))
		alternating[i] = 1 + math.Pow(-1, float64(i))
	}

	low, err := HighFrequencyPowerFraction(smooth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	high, err := HighFrequencyPowerFraction(alternating)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if low >= 0.5 {
		t.Fatalf("smooth fraction = %f, want < 0.5", low)
	}
	if high <= 0.5 {
		t.Fatalf("alternating fraction = %f, want > 0.5", high)
	}
	if low >= high {
		t.Fatalf("smooth fraction %f not below alternating %f", low, high)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 64: 64, 65: 128, 1000: 1024}
	for in, want := range cases {
		if got := nextPowerOf2(in); got != want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}
