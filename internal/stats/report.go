package stats

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region build-report

// BuildReport assembles summaries for all six metric series plus paired tests
// for both metrics and both comparisons: before-vs-after for the learned
// strategy, and learned-vs-baseline. All series must be present and
// index-aligned; fewer than two trials cannot support variance statistics.
func BuildReport(samples PairedSamples, confidence float64) (ComparisonReport, error) {
	// 1. Validate: every series present, all the same length
	n := -1
	for _, key := range MetricKeys {
		s, ok := samples[key]
		if !ok {
			return ComparisonReport{}, fmt.Errorf("build report: missing metric series %q", key)
		}
		if n == -1 {
			n = len(s)
		} else if len(s) != n {
			return ComparisonReport{}, &DimensionMismatchError{Op: "build report: " + key, LenA: n, LenB: len(s)}
		}
	}
	if n < 2 {
		return ComparisonReport{}, &InsufficientSamplesError{Op: "build report", Got: n, Want: 2}
	}

	// 2. Per-series summaries
	summaries := make(map[string]Summary, len(MetricKeys))
	for _, key := range MetricKeys {
		sum, err := Summarize(samples[key], confidence)
		if err != nil {
			return ComparisonReport{}, fmt.Errorf("summarize %s: %w", key, err)
		}
		summaries[key] = sum
	}

	// 3. Paired tests, fixed order
	pairs := []struct {
		metric     string
		comparison string
		a, b       string
	}{
		{"depth", "before_vs_learned", DepthBefore, DepthAfterLearned},
		{"depth", "learned_vs_baseline", DepthAfterLearned, DepthAfterBaseline},
		{"fidelity", "before_vs_learned", FidelityBefore, FidelityAfterLearn},
		{"fidelity", "learned_vs_baseline", FidelityAfterLearn, FidelityAfterBase},
	}

	tests := make([]PairedResult, 0, len(pairs))
	for _, p := range pairs {
		t, pv, err := PairedTest(samples[p.a], samples[p.b])
		if err != nil {
			return ComparisonReport{}, fmt.Errorf("paired test %s %s: %w", p.metric, p.comparison, err)
		}
		tests = append(tests, PairedResult{Metric: p.metric, Comparison: p.comparison, T: t, P: pv})
	}

	return ComparisonReport{
		NumTrials:  n,
		Confidence: confidence,
		Summaries:  summaries,
		Tests:      tests,
	}, nil
}

// #endregion build-report

// #region render

// Render formats the report as the text summary printed by cmd/compare.
func (r ComparisonReport) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Comparison over %d trials (%.0f%% confidence)\n\n", r.NumTrials, r.Confidence*100)

	b.WriteString("Depth:\n")
	renderSummaryLine(&b, "before", r.Summaries[DepthBefore], "%.2f")
	renderSummaryLine(&b, "after learned", r.Summaries[DepthAfterLearned], "%.2f")
	renderSummaryLine(&b, "after baseline", r.Summaries[DepthAfterBaseline], "%.2f")

	b.WriteString("\nFidelity:\n")
	renderSummaryLine(&b, "before", r.Summaries[FidelityBefore], "%.3f")
	renderSummaryLine(&b, "after learned", r.Summaries[FidelityAfterLearn], "%.3f")
	renderSummaryLine(&b, "after baseline", r.Summaries[FidelityAfterBase], "%.3f")

	b.WriteString("\nPaired t-tests:\n")
	for _, test := range r.Tests {
		fmt.Fprintf(&b, "  %-9s %-20s t = %8.3f  p = %.3f\n", test.Metric, test.Comparison, test.T, test.P)
	}

	return b.String()
}

func renderSummaryLine(b *strings.Builder, label string, s Summary, valFmt string) {
	fmt.Fprintf(b, "  %-15s mean = "+valFmt+"  std = "+valFmt+"  ci = ±"+valFmt+"\n",
		label, s.Mean, s.Std, s.CIHalfWidth)
}

// #endregion render
