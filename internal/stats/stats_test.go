package stats

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSummarizeKnownValues(t *testing.T) {
	// Hand-derived: mean 0.905, std sqrt(0.0053/3), t(0.975, df=3) = 3.182446
	sum, err := Summarize([]float64{0.9, 0.95, 0.85, 0.92}, 0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(sum.Mean, 0.905, 1e-12) {
		t.Fatalf("mean = %v, want 0.905", sum.Mean)
	}
	if !almostEqual(sum.Std, 0.0420317, 1e-6) {
		t.Fatalf("std = %v, want ~0.0420317", sum.Std)
	}
	if !almostEqual(sum.CIHalfWidth, 0.0668819, 1e-5) {
		t.Fatalf("ci half-width = %v, want ~0.0668819", sum.CIHalfWidth)
	}
	if sum.N != 4 {
		t.Fatalf("n = %d, want 4", sum.N)
	}
}

func TestSummarizeSingleSampleFails(t *testing.T) {
	_, err := Summarize([]float64{0.5}, 0.95)
	var insufficient *InsufficientSamplesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientSamplesError, got %v", err)
	}
	if insufficient.Got != 1 || insufficient.Want != 2 {
		t.Fatalf("unexpected counts: got=%d want=%d", insufficient.Got, insufficient.Want)
	}
}

func TestPairedTestIdenticalArrays(t *testing.T) {
	a := []float64{3, 1, 4, 1, 5}
	tStat, p, err := PairedTest(a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tStat != 0 {
		t.Fatalf("t = %v, want exactly 0", tStat)
	}
	if p != 1 {
		t.Fatalf("p = %v, want exactly 1", p)
	}
}

func TestPairedTestKnownValues(t *testing.T) {
	// diffs = [1,2,2,3]: scipy ttest_rel gives t=4.898979, p=0.016302
	a := []float64{1, 2, 3, 4}
	b := []float64{0, 0, 1, 1}
	tStat, p, err := PairedTest(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(tStat, 4.898979, 1e-5) {
		t.Fatalf("t = %v, want ~4.898979", tStat)
	}
	if !almostEqual(p, 0.016302, 1e-4) {
		t.Fatalf("p = %v, want ~0.016302", p)
	}
}

func TestPairedTestMismatchedLengths(t *testing.T) {
	_, _, err := PairedTest([]float64{1, 2, 3}, []float64{1, 2})
	var mismatch *DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected DimensionMismatchError, got %v", err)
	}
}

func TestPairedTestTooFewPairs(t *testing.T) {
	_, _, err := PairedTest([]float64{1}, []float64{2})
	var insufficient *InsufficientSamplesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientSamplesError, got %v", err)
	}
}

func TestPairedTestZeroVarianceNonzeroMean(t *testing.T) {
	tStat, p, err := PairedTest([]float64{2, 2, 2}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(tStat, 1) {
		t.Fatalf("t = %v, want +Inf", tStat)
	}
	if p != 0 {
		t.Fatalf("p = %v, want 0", p)
	}
}

func TestPairedTestNegativeDirection(t *testing.T) {
	// Learned strategy strictly below baseline: t must be negative
	tStat, _, err := PairedTest([]float64{5, 6, 7}, []float64{9, 11, 13})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tStat >= 0 {
		t.Fatalf("t = %v, want negative", tStat)
	}
}
