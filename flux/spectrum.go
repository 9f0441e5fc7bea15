package flux

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// PowerSpectrum returns the single-sided power spectrum of data: fftSize/2+1
// bins of |X[k]|^2 after Hann windowing and zero-padding to the next power of
// two. Non-finite entries are removed before the transform, so the result is
// a diagnostic of the surviving samples, not a calibrated periodogram.
//
// Bin k corresponds to normalized frequency k/fftSize cycles per pixel.
func PowerSpectrum(data []float64) ([]float64, error) {
	clean := Finite(data)
	if len(clean) == 0 {
		return nil, fmt.Errorf("power spectrum needs at least one finite sample: %d", len(data))
	}

	fftSize := nextPowerOf2(len(clean))

	coeffs := window.Generate(window.TypeHann, len(clean))

	in := make([]complex128, fftSize)
	for i, v := range clean {
		w := 1.0
		if len(coeffs) == len(clean) {
			w = coeffs[i]
		}

		in[i] = complex(v*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, nil
}

// HighFrequencyPowerFraction returns the fraction of non-DC spectral power
// that lies above half the Nyquist frequency. Clean spectra concentrate
// power at low frequencies, so values near 1 indicate noise-dominated data.
// Returns 0 when the spectrum carries no non-DC power.
func HighFrequencyPowerFraction(data []float64) (float64, error) {
	power, err := PowerSpectrum(data)
	if err != nil {
		return 0, err
	}

	var total, high float64
	for k := 1; k < len(power); k++ {
		total += power[k]
		if k >= len(power)/2 {
			high += power[k]
		}
	}

	if total == 0 {
		return 0, nil
	}

	return high / total, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}

	return size
}
