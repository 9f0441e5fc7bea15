package cindex

import "gonum.org/v1/gonum/stat"

// DefaultThresholdSigma is the standard anomaly threshold in units of
// standard deviations below the series mean.
const DefaultThresholdSigma = 2.0

// DetectAnomalies returns the samples whose value falls strictly below
// mean - sigma*std of the series, preserving input order. The threshold is
// computed from the series itself, not from a previously built Summary, so
// sigma can differ from the fixed 2-sigma baked into Summary.
//
// An empty result means no anomalies. Series with fewer than two samples
// have zero spread and produce no anomalies.
func DetectAnomalies(series Series, sigma float64) Series {
	if len(series) == 0 {
		return nil
	}

	values := series.Values()
	threshold := stat.Mean(values, nil) - sigma*stat.PopStdDev(values, nil)

	var anomalies Series
	for _, s := range series {
		if s.Value < threshold {
			anomalies = append(anomalies, s)
		}
	}

	return anomalies
}
