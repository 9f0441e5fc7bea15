// Package report renders coherence analysis results as Markdown documents
// suitable for sharing or archiving alongside the spectra they describe.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/codykristenson-sudo/spectro-coherence/batch"
)

// MarkdownWriter renders batch reports as a Markdown document.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that writes to output.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the full document: an overview table across all spectra
// followed by a detail section per spectrum.
func (w *MarkdownWriter) Write(reports []batch.Report) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Coherence Analysis Report")
	md.PlainText("")

	w.writeOverview(md, reports)

	for _, r := range reports {
		w.writeSpectrum(md, r)
	}

	return md.Build()
}

func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, reports []batch.Report) {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(len(r.Series)),
			formatValue(r.Summary.Mean, 4),
			formatValue(r.Summary.CV, 4),
			formatValue(r.SNR, 1),
			qualityText(r),
		})
	}

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Spectrum", "Windows", "Mean C-Index", "CV", "SNR", "Quality"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeSpectrum(md *markdown.Markdown, r batch.Report) {
	md.H2(r.Name)
	md.PlainText("")

	if r.InsufficientData() {
		md.PlainText("Insufficient data: no window passed the validity checks.")
		md.PlainText("")
		return
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Mean C-Index", formatValue(r.Summary.Mean, 4)},
			{"Std", formatValue(r.Summary.Std, 4)},
			{"Range", formatValue(r.Summary.Min, 4) + " - " + formatValue(r.Summary.Max, 4)},
			{"Coefficient of variation", formatPercent(r.Summary.CV, 2)},
			{"Anomaly threshold", formatValue(r.Summary.AnomalyThreshold, 4)},
			{"Valid pixels", formatPercent(r.ValidFraction, 1)},
			{"SNR (median)", formatValue(r.SNR, 1)},
			{"High-frequency power", formatPercent(r.NoiseFraction, 1)},
			{"Quality", r.Quality.String()},
		},
	})
	md.PlainText("")

	w.writeAnomalies(md, r)
}

func (w *MarkdownWriter) writeAnomalies(md *markdown.Markdown, r batch.Report) {
	if len(r.Anomalies) == 0 {
		md.PlainText("No coherence anomalies detected.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(r.Anomalies))
	for _, a := range r.Anomalies {
		rows = append(rows, []string{
			formatValue(a.Position, 1),
			formatValue(a.Value, 4),
		})
	}

	md.H3("Anomalies")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Position (pixel)", "C-Index"},
		Rows:   rows,
	})
	md.PlainText("")
}

func qualityText(r batch.Report) string {
	if r.InsufficientData() {
		return "Insufficient data"
	}

	return r.Quality.String()
}

// formatValue renders a float with fixed precision, or "n/a" for NaN and
// infinities so unusable metrics stay readable in tables.
func formatValue(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	return fmt.Sprintf("%.*f", prec, v)
}

// formatPercent renders a ratio as a percentage, or "n/a" when unusable.
func formatPercent(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	return fmt.Sprintf("%.*f%%", prec, v*100)
}
