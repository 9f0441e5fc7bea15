package cindex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics over one series of C-Index values.
type Summary struct {
	Mean float64
	Std  float64 // population standard deviation
	Min  float64
	Max  float64
	// CV is Std/Mean when Mean > 0, otherwise 0. Deliberately asymmetric
	// with the per-window stability guard (|mean| > 1e-10); the two checks
	// must not be unified, as they affect which quality bucket results.
	CV float64
	// AnomalyThreshold is Mean - 2*Std, the fixed 2-sigma outlier floor.
	AnomalyThreshold float64
	N                int
}

// Summarize reduces a sequence of C-Index values to descriptive statistics.
//
// An empty input yields NaN for Mean, Std, Min, Max, and AnomalyThreshold,
// CV == 0, and N == 0. No error is returned: NaN marks insufficient data and
// propagates deterministically (Classify maps NaN inputs to QualityPoor).
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Max: nan, AnomalyThreshold: nan}
	}

	mean := stat.Mean(values, nil)
	std := stat.PopStdDev(values, nil)

	var cv float64
	if mean > 0 {
		cv = std / mean
	}

	return Summary{
		Mean:             mean,
		Std:              std,
		Min:              floats.Min(values),
		Max:              floats.Max(values),
		CV:               cv,
		AnomalyThreshold: mean - 2*std,
		N:                len(values),
	}
}
