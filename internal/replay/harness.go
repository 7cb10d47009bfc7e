package replay

import (
	"context"
	"fmt"
	"math"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/circuit"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/rollout"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/trials"
)

// #region scripted-sidecar

// ScriptedSidecar plays back a fixture's trial scripts. Like the live gRPC
// client it implements the environment, the policy, and the baseline over one
// shared session, so the replayed run exercises the exact aggregator and
// runner code paths. One instance holds one cursor: replay is sequential.
type ScriptedSidecar struct {
	fixture *Fixture
	trial   *FixtureTrial
	cursor  int
}

var (
	_ rollout.Policy      = (*ScriptedSidecar)(nil)
	_ rollout.Environment = (*ScriptedSidecar)(nil)
	_ trials.Baseline     = (*ScriptedSidecar)(nil)
)

// NewScriptedSidecar wraps a fixture for playback.
func NewScriptedSidecar(f *Fixture) *ScriptedSidecar {
	return &ScriptedSidecar{fixture: f}
}

// Reset selects the trial script for a seed. Seeds map to trials the same way
// the aggregator assigns them: trial i runs under seed BaseSeed+i.
func (s *ScriptedSidecar) Reset(ctx context.Context, seed int64) (rollout.Observation, error) {
	idx := int(seed - s.fixture.Config.BaseSeed)
	if idx < 0 || idx >= len(s.fixture.Trials) {
		return nil, fmt.Errorf("seed %d has no scripted trial", seed)
	}
	s.trial = &s.fixture.Trials[idx]
	s.cursor = 0
	return append(rollout.Observation(nil), s.trial.InitialObservation...), nil
}

// Step checks the action against the script and advances the cursor.
func (s *ScriptedSidecar) Step(ctx context.Context, action int) (rollout.Observation, bool, error) {
	if s.cursor >= len(s.trial.Steps) {
		return nil, false, fmt.Errorf("step %d: script exhausted", s.cursor)
	}
	rec := s.trial.Steps[s.cursor]
	if action != rec.Action {
		return nil, false, fmt.Errorf("step %d: action %d not scripted, want %d", s.cursor, action, rec.Action)
	}
	s.cursor++
	return append(rollout.Observation(nil), rec.Observation...), rec.Done, nil
}

// CurrentCircuit returns the scripted snapshot at the cursor position.
func (s *ScriptedSidecar) CurrentCircuit(ctx context.Context) (circuit.Circuit, error) {
	if s.cursor == 0 {
		return s.trial.InitialCircuit.ToCircuit(), nil
	}
	return s.trial.Steps[s.cursor-1].Circuit.ToCircuit(), nil
}

// Fidelity returns the scripted value: an explicit circuit means the baseline
// evaluation, nil means the current rollout position.
func (s *ScriptedSidecar) Fidelity(ctx context.Context, c *circuit.Circuit) (float64, error) {
	if c != nil {
		return s.trial.Baseline.Fidelity, nil
	}
	if s.cursor == 0 {
		return s.trial.FidelityBefore, nil
	}
	return s.trial.Steps[s.cursor-1].Fidelity, nil
}

// InitialRecurrentState returns an empty hidden state: scripted actions do
// not depend on it.
func (s *ScriptedSidecar) InitialRecurrentState() rollout.RecurrentState {
	return rollout.RecurrentState{}
}

// ComputeActionMask returns the scripted mask for the upcoming step.
func (s *ScriptedSidecar) ComputeActionMask(ctx context.Context, _ rollout.Environment) (rollout.ActionMask, error) {
	if s.cursor >= len(s.trial.Steps) {
		return nil, fmt.Errorf("step %d: script exhausted", s.cursor)
	}
	return append(rollout.ActionMask(nil), s.trial.Steps[s.cursor].Mask...), nil
}

// SelectAction returns the scripted action for the upcoming step.
func (s *ScriptedSidecar) SelectAction(ctx context.Context, obs rollout.Observation, rec rollout.RecurrentState, mask rollout.ActionMask) (int, rollout.RecurrentState, error) {
	if s.cursor >= len(s.trial.Steps) {
		return 0, nil, fmt.Errorf("step %d: script exhausted", s.cursor)
	}
	return s.trial.Steps[s.cursor].Action, rec, nil
}

// Optimize returns the scripted baseline circuit.
func (s *ScriptedSidecar) Optimize(ctx context.Context, c circuit.Circuit) (circuit.Circuit, error) {
	return s.trial.Baseline.Circuit.ToCircuit(), nil
}

// #endregion scripted-sidecar

// #region expectation-result

// ExpectationResult is the pass/fail outcome of one fixture expectation.
type ExpectationResult struct {
	Name string
	Want float64
	Got  float64
	Pass bool
}

// #endregion expectation-result

// #region replay

// Replay runs a fixture's scripted trials through the real aggregator and
// report builder, then checks the produced report against the fixture's
// expected values. Identical fixtures always produce identical reports.
func Replay(ctx context.Context, f *Fixture) (stats.ComparisonReport, []ExpectationResult, error) {
	if len(f.Trials) == 0 {
		return stats.ComparisonReport{}, nil, fmt.Errorf("fixture has no trials")
	}

	side := NewScriptedSidecar(f)
	agg := trials.NewAggregator(
		func() (rollout.Environment, rollout.Policy, error) { return side, side, nil },
		side,
		f.Config.ToTrialsConfig(len(f.Trials)),
	)

	samples, err := agg.Compare(ctx)
	if err != nil {
		return stats.ComparisonReport{}, nil, fmt.Errorf("replay trials: %w", err)
	}
	report, err := stats.BuildReport(samples, f.Config.Confidence)
	if err != nil {
		return stats.ComparisonReport{}, nil, fmt.Errorf("replay report: %w", err)
	}

	return report, CheckExpectations(f.Expected, report), nil
}

// CheckExpectations compares a report against a fixture's expected values.
func CheckExpectations(exp FixtureExpectation, report stats.ComparisonReport) []ExpectationResult {
	var results []ExpectationResult

	for _, es := range exp.Summaries {
		summary, ok := report.Summaries[es.Key]
		if !ok {
			results = append(results,
				ExpectationResult{Name: fmt.Sprintf("summary %s mean", es.Key), Want: es.Mean, Got: math.NaN()},
				ExpectationResult{Name: fmt.Sprintf("summary %s std", es.Key), Want: es.Std, Got: math.NaN()},
			)
			continue
		}
		results = append(results,
			checkValue(fmt.Sprintf("summary %s mean", es.Key), es.Mean, summary.Mean, exp.Tolerance),
			checkValue(fmt.Sprintf("summary %s std", es.Key), es.Std, summary.Std, exp.Tolerance),
		)
	}

	for _, et := range exp.Tests {
		name := fmt.Sprintf("test %s %s", et.Metric, et.Comparison)
		found := false
		for _, pt := range report.Tests {
			if pt.Metric == et.Metric && pt.Comparison == et.Comparison {
				results = append(results,
					checkValue(name+" t", et.T, pt.T, exp.Tolerance),
					checkValue(name+" p", et.P, pt.P, exp.Tolerance),
				)
				found = true
				break
			}
		}
		if !found {
			results = append(results,
				ExpectationResult{Name: name + " t", Want: et.T, Got: math.NaN()},
				ExpectationResult{Name: name + " p", Want: et.P, Got: math.NaN()},
			)
		}
	}

	return results
}

func checkValue(name string, want, got, tol float64) ExpectationResult {
	pass := math.Abs(got-want) <= tol
	// Infinities carry sign information from zero-variance t-tests.
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		pass = want == got
	}
	return ExpectationResult{Name: name, Want: want, Got: got, Pass: pass}
}

// #endregion replay
