package stats

// #region imports
import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// #endregion

// #region summarize

// Summarize computes mean, Bessel-corrected sample standard deviation, and a
// two-sided Student-t confidence interval half-width for one metric series.
// confidence is the two-sided level, e.g. 0.95.
func Summarize(sample []float64, confidence float64) (Summary, error) {
	n := len(sample)
	if n < 2 {
		return Summary{}, &InsufficientSamplesError{Op: "summarize", Got: n, Want: 2}
	}

	mean := stat.Mean(sample, nil)
	std := stat.StdDev(sample, nil) // divisor N-1

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	tCrit := dist.Quantile(1 - (1-confidence)/2)

	return Summary{
		N:           n,
		Mean:        mean,
		Std:         std,
		CIHalfWidth: tCrit * std / math.Sqrt(float64(n)),
		Confidence:  confidence,
	}, nil
}

// #endregion summarize

// #region paired-test

// PairedTest runs a two-sided matched-pairs t-test on the per-index
// differences a[i]-b[i]. Arrays must be the same length and hold at least two
// pairs. Identical arrays yield t=0, p=1; zero-variance differences with a
// nonzero mean yield t=±Inf, p=0 (matching scipy's ttest_rel).
func PairedTest(a, b []float64) (tStat, pValue float64, err error) {
	if len(a) != len(b) {
		return 0, 0, &DimensionMismatchError{Op: "paired test", LenA: len(a), LenB: len(b)}
	}
	n := len(a)
	if n < 2 {
		return 0, 0, &InsufficientSamplesError{Op: "paired test", Got: n, Want: 2}
	}

	diffs := make([]float64, n)
	for i := range a {
		diffs[i] = a[i] - b[i]
	}

	meanD := stat.Mean(diffs, nil)
	stdD := stat.StdDev(diffs, nil)

	// Degenerate variance: all differences equal
	if stdD == 0 {
		if meanD == 0 {
			return 0, 1, nil
		}
		return math.Inf(sign(meanD)), 0, nil
	}

	tStat = meanD / (stdD / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	pValue = 2 * dist.CDF(-math.Abs(tStat))
	return tStat, pValue, nil
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

// #endregion paired-test
