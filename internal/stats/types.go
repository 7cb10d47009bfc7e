package stats

// #region imports
import (
	"encoding/json"
	"fmt"
	"math"
)

// #endregion

// #region metric-keys

// Metric series keys. Arrays under these keys are index-aligned: position i
// in every series came from the same initial circuit.
const (
	DepthBefore        = "depth_before"
	FidelityBefore     = "fidelity_before"
	DepthAfterLearned  = "depth_after_learned"
	FidelityAfterLearn = "fidelity_after_learned"
	DepthAfterBaseline = "depth_after_baseline"
	FidelityAfterBase  = "fidelity_after_baseline"
)

// MetricKeys lists every series a full comparison produces, in render order.
var MetricKeys = []string{
	DepthBefore,
	DepthAfterLearned,
	DepthAfterBaseline,
	FidelityBefore,
	FidelityAfterLearn,
	FidelityAfterBase,
}

// PairedSamples maps a metric series key to its per-trial values.
type PairedSamples map[string][]float64

// #endregion metric-keys

// #region summary

// Summary holds the variance statistics for one metric series.
type Summary struct {
	N           int     `json:"n"`
	Mean        float64 `json:"mean"`
	Std         float64 `json:"std"` // sample std, divisor N-1
	CIHalfWidth float64 `json:"ci_half_width"`
	Confidence  float64 `json:"confidence"`
}

// PairedResult is the outcome of one two-sided matched-pairs t-test.
type PairedResult struct {
	Metric     string  `json:"metric"`     // "depth" | "fidelity"
	Comparison string  `json:"comparison"` // "before_vs_learned" | "learned_vs_baseline"
	T          float64 `json:"t"`
	P          float64 `json:"p"`
}

// pairedResultJSON is the wire form of PairedResult. The t statistic can be
// ±Inf, which JSON has no literal for, so it travels as a raw value that is
// either a number or the strings "+Inf"/"-Inf".
type pairedResultJSON struct {
	Metric     string          `json:"metric"`
	Comparison string          `json:"comparison"`
	T          json.RawMessage `json:"t"`
	P          float64         `json:"p"`
}

func (r PairedResult) MarshalJSON() ([]byte, error) {
	out := pairedResultJSON{Metric: r.Metric, Comparison: r.Comparison, P: r.P}
	if math.IsInf(r.T, 0) {
		out.T, _ = json.Marshal(fmt.Sprintf("%v", r.T))
	} else {
		var err error
		out.T, err = json.Marshal(r.T)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

func (r *PairedResult) UnmarshalJSON(data []byte) error {
	var in pairedResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Metric, r.Comparison, r.P = in.Metric, in.Comparison, in.P
	if len(in.T) == 0 {
		r.T = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(in.T, &f); err == nil {
		r.T = f
		return nil
	}
	var s string
	if err := json.Unmarshal(in.T, &s); err != nil {
		return err
	}
	switch s {
	case "+Inf", "Inf":
		r.T = math.Inf(1)
	case "-Inf":
		r.T = math.Inf(-1)
	default:
		return fmt.Errorf("paired result: unrecognized t value %q", s)
	}
	return nil
}

// ComparisonReport is the final product of a comparison run. Immutable once
// built.
type ComparisonReport struct {
	NumTrials  int                `json:"num_trials"`
	Confidence float64            `json:"confidence"`
	Summaries  map[string]Summary `json:"summaries"`
	Tests      []PairedResult     `json:"tests"`
}

// #endregion summary

// #region errors

// InsufficientSamplesError means an operation was asked to work on fewer
// samples than it mathematically requires.
type InsufficientSamplesError struct {
	Op   string
	Got  int
	Want int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("%s: need at least %d samples, got %d", e.Op, e.Want, e.Got)
}

// DimensionMismatchError means paired arrays of unequal length were passed to
// a paired operation.
type DimensionMismatchError struct {
	Op   string
	LenA int
	LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: paired arrays differ in length: %d vs %d", e.Op, e.LenA, e.LenB)
}

// #endregion errors
