// Package batch runs coherence analysis over many spectra concurrently.
// Each spectrum is scanned, summarized, anomaly-checked, and classified
// independently; the core retains no state between spectra, so the work is
// embarrassingly parallel.
package batch

import (
	"context"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/codykristenson-sudo/spectro-coherence/cindex"
	"github.com/codykristenson-sudo/spectro-coherence/flux"
)

// Spectrum is one flux array to analyze. Sigma optionally carries per-pixel
// uncertainties for SNR estimation and may be nil.
type Spectrum struct {
	Name  string
	Flux  []float64
	Sigma []float64
}

// Report is the full coherence assessment of one spectrum.
type Report struct {
	Name      string
	Series    cindex.Series
	Summary   cindex.Summary
	Anomalies cindex.Series
	Quality   cindex.Quality

	// SNR is the median signal-to-noise ratio, NaN without a usable
	// uncertainty array.
	SNR float64
	// ValidFraction is the fraction of finite pixels in the input.
	ValidFraction float64
	// NoiseFraction is the high-frequency spectral power fraction, NaN
	// when the input has no finite pixels.
	NoiseFraction float64
}

// InsufficientData reports whether the scan produced no scored windows.
// Such reports carry NaN summaries and always classify as Poor; callers
// should present them as "insufficient data" rather than a hard failure.
func (r Report) InsufficientData() bool {
	return len(r.Series) == 0
}

// Analyzer analyzes batches of spectra with bounded concurrency.
type Analyzer struct {
	scan        cindex.Config
	sigma       float64
	concurrency int
	logger      *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithScanOptions forwards scan parameters to the per-spectrum C-Index scan.
func WithScanOptions(opts ...cindex.Option) Option {
	return func(a *Analyzer) {
		a.scan = cindex.ApplyOptions(opts...)
	}
}

// WithThresholdSigma sets the anomaly threshold in standard deviations
// below the series mean. Default is 2.
func WithThresholdSigma(sigma float64) Option {
	return func(a *Analyzer) {
		if sigma > 0 {
			a.sigma = sigma
		}
	}
}

// WithConcurrency sets the maximum number of spectra analyzed at once.
// Default is 4.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch progress.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an Analyzer with the given options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		scan:        cindex.DefaultConfig(),
		sigma:       cindex.DefaultThresholdSigma,
		concurrency: 4,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// Analyze runs coherence analysis on every spectrum and returns one report
// per input, in input order. Spectra that cannot be scored still produce a
// report (see [Report.InsufficientData]); the only error condition is
// context cancellation, in which case the partial results are discarded.
func (a *Analyzer) Analyze(ctx context.Context, spectra []Spectrum) ([]Report, error) {
	a.logger.Info("starting batch analysis",
		"spectra", len(spectra),
		"concurrency", a.concurrency,
	)

	reports := make([]Report, len(spectra))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, sp := range spectra {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			reports[i] = a.analyzeOne(sp)

			a.logger.Info("spectrum analyzed",
				"name", sp.Name,
				"windows", len(reports[i].Series),
				"quality", reports[i].Quality.String(),
			)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (a *Analyzer) analyzeOne(sp Spectrum) Report {
	series := cindex.ScanWithConfig(sp.Flux, a.scan)
	summary := cindex.Summarize(series.Values())

	snr := math.NaN()
	if len(sp.Sigma) > 0 {
		snr = flux.SNR(sp.Flux, sp.Sigma)
	}

	noise := math.NaN()
	if f, err := flux.HighFrequencyPowerFraction(sp.Flux); err == nil {
		noise = f
	}

	return Report{
		Name:          sp.Name,
		Series:        series,
		Summary:       summary,
		Anomalies:     cindex.DetectAnomalies(series, a.sigma),
		Quality:       cindex.Classify(summary.Mean, summary.CV),
		SNR:           snr,
		ValidFraction: flux.ValidFraction(sp.Flux),
		NoiseFraction: noise,
	}
}
