// Package cindex computes the C-Index, a windowed coherence metric for
// one-dimensional spectroscopic flux arrays.
//
// The C-Index scores each fixed-size window of a flux sequence by averaging
// three normalized components, each bounded in [0, 1]:
//
//   - Smoothness: inverse mean absolute gradient, relative to the window's
//     own standard deviation
//   - Stability: inverse coefficient of variation
//   - Consistency: lag-1 autocorrelation mapped from [-1, 1] to [0, 1]
//
// A score of 1 represents perfect coherence. Windows slide across the input
// at a fixed step; windows with too few finite samples are skipped rather
// than scored.
//
// # Usage
//
// Scan a flux array, summarize the resulting series, and classify quality:
//
//	series := cindex.Scan(spectrum, cindex.WithWindow(200), cindex.WithStep(100))
//	summary := cindex.Summarize(series.Values())
//	quality := cindex.Classify(summary.Mean, summary.CV)
//	anomalies := cindex.DetectAnomalies(series, 2.0)
//
// All functions are pure and deterministic: identical inputs produce
// identical outputs, and no state is retained between calls. Multiple
// spectra can be scanned concurrently from separate goroutines.
//
// Degenerate inputs (short arrays, all-NaN data) produce empty series, not
// errors. Callers should check for emptiness before consuming downstream.
package cindex
