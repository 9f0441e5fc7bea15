package cindex

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// epsilon guards divisions against zero-spread and zero-mean windows.
const epsilon = 1e-10

// neutral is the fallback value for components whose defining ratio is
// undefined on the given window (zero mean, non-finite autocorrelation).
const neutral = 0.5

// Components holds the three normalized coherence components of a single
// window and their combination.
type Components struct {
	Smoothness  float64
	Stability   float64
	Consistency float64
	CIndex      float64 // (Smoothness + Stability + Consistency) / 3
}

// Analyze computes the coherence components of one window of finite values.
// The caller is expected to have removed NaN and infinite entries; Scan does
// this before delegating here.
//
// Smoothness and Stability are in (0, 1] by the 1/(1+x) form, Consistency in
// [0, 1], so CIndex is always in [0, 1]. A zero-length window returns the
// zero Components.
func Analyze(segment []float64) Components {
	if len(segment) == 0 {
		return Components{}
	}

	mean := stat.Mean(segment, nil)
	std := stat.PopStdDev(segment, nil)

	// Smoothness: inverse mean absolute gradient relative to spread.
	var meanGrad float64
	if len(segment) > 1 {
		var sum float64
		for i := 1; i < len(segment); i++ {
			sum += math.Abs(segment[i] - segment[i-1])
		}
		meanGrad = sum / float64(len(segment)-1)
	}
	smoothness := 1.0 / (1.0 + meanGrad/(std+epsilon))

	// Stability: inverse coefficient of variation, neutral on zero mean.
	stability := neutral
	if math.Abs(mean) > epsilon {
		cv := std / math.Abs(mean)
		stability = 1.0 / (1.0 + cv)
	}

	// Consistency: lag-1 autocorrelation mapped onto [0, 1]. Constant
	// windows yield a non-finite correlation and fall back to neutral.
	consistency := neutral
	if len(segment) > 1 {
		r := stat.Correlation(segment[:len(segment)-1], segment[1:], nil)
		if !math.IsNaN(r) && !math.IsInf(r, 0) {
			consistency = (r + 1) / 2
		}
	}

	return Components{
		Smoothness:  smoothness,
		Stability:   stability,
		Consistency: consistency,
		CIndex:      (smoothness + stability + consistency) / 3.0,
	}
}
