package cindex

import "math"

// minSegment is the hard floor on finite samples per window. Windows that
// pass the validity-fraction check but filter down below this are skipped to
// avoid degenerate statistics.
const minSegment = 10

// Sample pairs a window center position (in pixel coordinates) with its
// C-Index value.
type Sample struct {
	Position float64
	Value    float64
}

// Series is an ordered sequence of samples produced by one scan. Positions
// are strictly increasing.
type Series []Sample

// Positions returns the window center positions as a new slice.
func (s Series) Positions() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.Position
	}

	return out
}

// Values returns the C-Index values as a new slice.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.Value
	}

	return out
}

// Scan slides fixed-size windows across data and scores each window that has
// enough finite samples. Windows advance by the configured step while they
// fit entirely inside data; each accepted window emits a sample at position
// offset + window/2.
//
// Data shorter than the window, or containing no finite values, yields an
// empty series. NaN and infinite entries are removed from each window before
// scoring; a window is skipped when fewer than MinValidFraction of its
// entries are finite, or when fewer than 10 finite entries remain.
func Scan(data []float64, opts ...Option) Series {
	return ScanWithConfig(data, ApplyOptions(opts...))
}

// ScanWithConfig is Scan with an explicit configuration.
func ScanWithConfig(data []float64, cfg Config) Series {
	if cfg.Window <= 0 || cfg.Step <= 0 {
		return nil
	}

	var series Series

	minValid := float64(cfg.Window) * cfg.MinValidFraction
	segment := make([]float64, 0, cfg.Window)

	for i := 0; i+cfg.Window <= len(data); i += cfg.Step {
		window := data[i : i+cfg.Window]

		segment = segment[:0]
		for _, v := range window {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				segment = append(segment, v)
			}
		}

		if float64(len(segment)) < minValid || len(segment) < minSegment {
			continue
		}

		series = append(series, Sample{
			Position: float64(i) + float64(cfg.Window)/2,
			Value:    Analyze(segment).CIndex,
		})
	}

	return series
}
