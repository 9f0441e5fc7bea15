// Package flux provides numeric utilities over one-dimensional spectral flux
// arrays: validity accounting, signal-to-noise estimation, and a
// periodogram-based noise diagnostic. Non-finite entries (NaN, Inf) mark
// missing or unusable pixels throughout.
package flux

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Finite returns a copy of data with NaN and infinite entries removed.
func Finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if isFinite(v) {
			out = append(out, v)
		}
	}

	return out
}

// ValidFraction returns the fraction of finite entries in data, or 0 for an
// empty slice.
func ValidFraction(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	var n int
	for _, v := range data {
		if isFinite(v) {
			n++
		}
	}

	return float64(n) / float64(len(data))
}

// SNR estimates the median signal-to-noise ratio of a flux array given its
// per-pixel uncertainty. Pixels where either value is non-finite or the
// uncertainty is not positive are ignored. Returns NaN when the slices
// differ in length or no pixel is usable.
func SNR(flux, sigma []float64) float64 {
	if len(flux) != len(sigma) {
		return math.NaN()
	}

	ratios := make([]float64, 0, len(flux))
	for i := range flux {
		if isFinite(flux[i]) && isFinite(sigma[i]) && sigma[i] > 0 {
			ratios = append(ratios, flux[i]/sigma[i])
		}
	}

	median, err := stats.Median(ratios)
	if err != nil {
		return math.NaN()
	}

	return median
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
