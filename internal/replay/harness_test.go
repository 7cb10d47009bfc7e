package replay

import (
	"context"
	"math"
	"testing"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
)

// #region fixture-builder

// chain builds a single-qubit circuit of n sequential rotations, so its
// depth is exactly n.
func chain(n int) FixtureCircuit {
	fc := FixtureCircuit{NumQubits: 1}
	for i := 0; i < n; i++ {
		fc.Instructions = append(fc.Instructions, FixtureInstruction{
			Name: "rz", Qubits: []int{0}, Params: []float64{0.1},
		})
	}
	return fc
}

// chainWithSave appends a save_statevector marker to a chain.
func chainWithSave(n int) FixtureCircuit {
	fc := chain(n)
	fc.Instructions = append(fc.Instructions, FixtureInstruction{
		Name: "save_statevector", Qubits: []int{0},
	})
	return fc
}

// testFixture scripts three trials with hand-checked statistics:
//
//	depth before    5, 6, 7    after learned 3, 4, 5    after baseline 2, 3, 4
//	fidelity before 0.80, 0.82, 0.81
//	fidelity after learned 0.95, 0.96, 0.94; baseline 0.90, 0.93, 0.89
//
// The learned-vs-baseline fidelity diffs (0.05, 0.03, 0.05) give t = 6.5
// exactly; both depth comparisons have constant diffs, giving t = +Inf.
func testFixture() *Fixture {
	f := &Fixture{
		Description: "three scripted trials, two steps each",
		Config: FixtureConfig{
			StepBudget: 4,
			Confidence: 0.95,
			BaseSeed:   1,
			StripKinds: []string{"save_statevector"},
		},
	}

	fidBefore := []float64{0.80, 0.82, 0.81}
	fidLearned := []float64{0.95, 0.96, 0.94}
	fidBaseline := []float64{0.90, 0.93, 0.89}

	for i := 0; i < 3; i++ {
		f.Trials = append(f.Trials, FixtureTrial{
			InitialObservation: []float32{float32(i)},
			InitialCircuit:     chainWithSave(4 + i), // depth 5+i
			FidelityBefore:     fidBefore[i],
			Steps: []FixtureStep{
				{
					Mask:        []bool{true},
					Action:      0,
					Observation: []float32{float32(i), 1},
					Fidelity:    0.5,
					Circuit:     chain(4 + i),
				},
				{
					Mask:        []bool{true},
					Action:      0,
					Observation: []float32{float32(i), 2},
					Done:        true,
					Fidelity:    fidLearned[i],
					Circuit:     chain(3 + i), // depth 3+i
				},
			},
			Baseline: FixtureBaseline{
				Circuit:  chain(2 + i), // depth 2+i
				Fidelity: fidBaseline[i],
			},
		})
	}

	f.Expected = FixtureExpectation{
		Tolerance: 1e-4,
		Summaries: []ExpectedSummary{
			{Key: stats.DepthBefore, Mean: 6, Std: 1},
			{Key: stats.DepthAfterLearned, Mean: 4, Std: 1},
			{Key: stats.FidelityAfterLearn, Mean: 0.95, Std: 0.01},
		},
		Tests: []ExpectedTest{
			{Metric: "depth", Comparison: "before_vs_learned", T: math.Inf(1), P: 0},
			{Metric: "depth", Comparison: "learned_vs_baseline", T: math.Inf(1), P: 0},
			{Metric: "fidelity", Comparison: "learned_vs_baseline", T: 6.5, P: 0.02286},
		},
	}
	return f
}

// #endregion fixture-builder

func TestReplayAllExpectationsPass(t *testing.T) {
	report, checks, err := Replay(context.Background(), testFixture())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if report.NumTrials != 3 {
		t.Fatalf("NumTrials = %d, want 3", report.NumTrials)
	}
	if len(checks) == 0 {
		t.Fatal("expected expectation results")
	}
	for _, c := range checks {
		if !c.Pass {
			t.Errorf("%s: got %v, want %v", c.Name, c.Got, c.Want)
		}
	}
}

func TestReplayReportValues(t *testing.T) {
	report, _, err := Replay(context.Background(), testFixture())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if got := report.Summaries[stats.DepthAfterBaseline].Mean; got != 3 {
		t.Errorf("baseline depth mean = %v, want 3", got)
	}
	var fid stats.PairedResult
	for _, pt := range report.Tests {
		if pt.Metric == "fidelity" && pt.Comparison == "learned_vs_baseline" {
			fid = pt
		}
	}
	if math.Abs(fid.T-6.5) > 1e-9 {
		t.Errorf("fidelity learned_vs_baseline t = %v, want 6.5", fid.T)
	}
	if math.Abs(fid.P-0.02286) > 1e-4 {
		t.Errorf("fidelity learned_vs_baseline p = %v, want ~0.02286", fid.P)
	}
}

func TestReplayDeterministic(t *testing.T) {
	a, _, err := Replay(context.Background(), testFixture())
	if err != nil {
		t.Fatalf("first replay: %v", err)
	}
	b, _, err := Replay(context.Background(), testFixture())
	if err != nil {
		t.Fatalf("second replay: %v", err)
	}

	for _, key := range stats.MetricKeys {
		if a.Summaries[key] != b.Summaries[key] {
			t.Errorf("summary %s differs between replays", key)
		}
	}
	for i := range a.Tests {
		if a.Tests[i] != b.Tests[i] {
			t.Errorf("test %d differs between replays", i)
		}
	}
}

func TestReplayDetectsMismatch(t *testing.T) {
	f := testFixture()
	f.Expected.Summaries[0].Mean = 99 // deliberately wrong

	_, checks, err := Replay(context.Background(), f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if checks[0].Pass {
		t.Error("expected first summary check to fail")
	}
	for _, c := range checks[2:] {
		if !c.Pass {
			t.Errorf("%s should still pass: got %v, want %v", c.Name, c.Got, c.Want)
		}
	}
}

func TestReplayEmptyFixture(t *testing.T) {
	if _, _, err := Replay(context.Background(), &Fixture{}); err == nil {
		t.Fatal("expected error for fixture with no trials")
	}
}

func TestReplayScriptExhausted(t *testing.T) {
	f := testFixture()
	// Last step no longer terminates, so the runner asks for a third step
	// that was never scripted.
	for i := range f.Trials {
		f.Trials[i].Steps[1].Done = false
	}

	if _, _, err := Replay(context.Background(), f); err == nil {
		t.Fatal("expected script-exhausted error")
	}
}

func TestScriptedSidecarRejectsUnscriptedSeed(t *testing.T) {
	side := NewScriptedSidecar(testFixture())

	if _, err := side.Reset(context.Background(), 99); err == nil {
		t.Fatal("expected error for seed with no scripted trial")
	}
}

func TestScriptedSidecarRejectsUnscriptedAction(t *testing.T) {
	side := NewScriptedSidecar(testFixture())
	if _, err := side.Reset(context.Background(), 1); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if _, _, err := side.Step(context.Background(), 42); err == nil {
		t.Fatal("expected error for action that diverges from the script")
	}
}

func TestCheckExpectationsMissingSeries(t *testing.T) {
	exp := FixtureExpectation{
		Summaries: []ExpectedSummary{{Key: "no_such_series", Mean: 1, Std: 1}},
		Tests:     []ExpectedTest{{Metric: "depth", Comparison: "no_such_comparison"}},
	}
	report := stats.ComparisonReport{Summaries: map[string]stats.Summary{}}

	checks := CheckExpectations(exp, report)
	if len(checks) != 4 {
		t.Fatalf("expected 4 results, got %d", len(checks))
	}
	for _, c := range checks {
		if c.Pass {
			t.Errorf("%s should fail for missing target", c.Name)
		}
	}
}
