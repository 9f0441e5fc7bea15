package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/codykristenson-sudo/spectro-coherence/batch"
	"github.com/codykristenson-sudo/spectro-coherence/cindex"
)

func sampleReport(name string) batch.Report {
	series := cindex.Series{
		{Position: 50, Value: 0.86},
		{Position: 100, Value: 0.87},
		{Position: 150, Value: 0.85},
	}
	summary := cindex.Summarize(series.Values())

	return batch.Report{
		Name:          name,
		Series:        series,
		Summary:       summary,
		Quality:       cindex.Classify(summary.Mean, summary.CV),
		SNR:           42.5,
		ValidFraction: 0.98,
		NoiseFraction: 0.05,
	}
}

func TestWriteRendersOverviewAndDetails(t *testing.T) {
	var buf bytes.Buffer

	r := sampleReport("HD10700")
	if err := NewMarkdownWriter(&buf).Write([]batch.Report{r}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Coherence Analysis Report",
		"## Summary",
		"## HD10700",
		"Mean C-Index",
		"42.5",
		r.Quality.String(),
		"No coherence anomalies detected.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRendersAnomalies(t *testing.T) {
	var buf bytes.Buffer

	r := sampleReport("noisy")
	r.Anomalies = cindex.Series{{Position: 250, Value: 0.41}}

	if err := NewMarkdownWriter(&buf).Write([]batch.Report{r}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Anomalies") {
		t.Fatalf("output missing anomaly section:\n%s", out)
	}
	if !strings.Contains(out, "250.0") || !strings.Contains(out, "0.4100") {
		t.Fatalf("output missing anomaly row:\n%s", out)
	}
}

func TestWriteInsufficientData(t *testing.T) {
	var buf bytes.Buffer

	r := batch.Report{
		Name:    "empty",
		Summary: cindex.Summarize(nil),
		Quality: cindex.QualityPoor,
		SNR:     math.NaN(),
	}

	if err := NewMarkdownWriter(&buf).Write([]batch.Report{r}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Insufficient data") {
		t.Fatalf("output missing insufficient-data marker:\n%s", out)
	}

	// NaN metrics must render as n/a, never as literal NaN.
	if strings.Contains(out, "NaN") {
		t.Fatalf("output leaked NaN:\n%s", out)
	}
}

func TestWriteMultipleReportsOrdered(t *testing.T) {
	var buf bytes.Buffer

	reports := []batch.Report{sampleReport("first"), sampleReport("second")}
	if err := NewMarkdownWriter(&buf).Write(reports); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Index(out, "## first") > strings.Index(out, "## second") {
		t.Fatalf("reports rendered out of order:\n%s", out)
	}
}
