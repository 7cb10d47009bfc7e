package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/replay"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/results"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to results database")
	runID := flag.String("run", "", "run ID to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *runID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --run <run-id> --out path/to/fixture.json")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, runID, outPath string) error {
	store, err := results.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	samples, err := store.GetSamples(runID)
	if err != nil {
		return err
	}
	n := len(samples[stats.DepthBefore])
	if n == 0 {
		return fmt.Errorf("run %s has no samples", runID)
	}

	fixture, err := buildFixture(rec, samples)
	if err != nil {
		return err
	}
	return writeFixture(fixture, outPath)
}

// buildFixture synthesizes a scripted fixture that reproduces a stored run's
// metric series. Trial scripts use single-qubit circuits whose depth equals
// the recorded value and one terminal rollout step carrying the recorded
// fidelity: enough to regenerate the identical report, not the original
// step-by-step session.
func buildFixture(rec results.RunRecord, samples stats.PairedSamples) (*replay.Fixture, error) {
	n := len(samples[stats.DepthBefore])
	f := &replay.Fixture{
		Description: fmt.Sprintf("Exported from run %s: %d trials", rec.RunID, n),
		Config: replay.FixtureConfig{
			StepBudget: rec.StepBudget,
			Confidence: rec.Confidence,
			BaseSeed:   rec.BaseSeed,
			StripKinds: []string{"save_statevector"},
		},
	}

	for i := 0; i < n; i++ {
		f.Trials = append(f.Trials, replay.FixtureTrial{
			InitialObservation: []float32{float32(i)},
			InitialCircuit:     chain(int(math.Round(samples[stats.DepthBefore][i]))),
			FidelityBefore:     samples[stats.FidelityBefore][i],
			Steps: []replay.FixtureStep{{
				Mask:        []bool{true},
				Action:      0,
				Observation: []float32{float32(i), 1},
				Done:        true,
				Fidelity:    samples[stats.FidelityAfterLearn][i],
				Circuit:     chain(int(math.Round(samples[stats.DepthAfterLearned][i]))),
			}},
			Baseline: replay.FixtureBaseline{
				Circuit:  chain(int(math.Round(samples[stats.DepthAfterBaseline][i]))),
				Fidelity: samples[stats.FidelityAfterBase][i],
			},
		})
	}

	report, err := stats.BuildReport(samples, rec.Confidence)
	if err != nil {
		return nil, fmt.Errorf("build expectations: %w", err)
	}
	f.Expected.Tolerance = 1e-9
	for _, key := range stats.MetricKeys {
		s := report.Summaries[key]
		f.Expected.Summaries = append(f.Expected.Summaries, replay.ExpectedSummary{
			Key: key, Mean: s.Mean, Std: s.Std,
		})
	}
	for _, pt := range report.Tests {
		// JSON has no literal for ±Inf, and ExpectedTest carries plain floats.
		if math.IsInf(pt.T, 0) {
			continue
		}
		f.Expected.Tests = append(f.Expected.Tests, replay.ExpectedTest{
			Metric: pt.Metric, Comparison: pt.Comparison, T: pt.T, P: pt.P,
		})
	}
	return f, nil
}

// chain builds a single-qubit circuit whose depth is exactly n.
func chain(n int) replay.FixtureCircuit {
	if n < 1 {
		n = 1
	}
	fc := replay.FixtureCircuit{NumQubits: 1}
	for i := 0; i < n; i++ {
		fc.Instructions = append(fc.Instructions, replay.FixtureInstruction{
			Name: "rz", Qubits: []int{0}, Params: []float64{0},
		})
	}
	return fc
}

// #endregion export

// #region output

func writeFixture(fixture *replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("Wrote fixture to %s (%d bytes, %d trials)\n", outPath, len(data), len(fixture.Trials))
	return nil
}

// #endregion output
