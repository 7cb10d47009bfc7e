package main

import (
	"context"
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
	dbPath := flag.String("db", "", "path to results database (DB mode)")
	runID := flag.String("run", "", "run ID to re-render (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/qopt_eval.db --run <run-id>")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *runID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	report, checks, err := replay.Replay(context.Background(), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	fmt.Println(report.Render())
	return printChecks(checks)
}

// printChecks outputs the expectation table and returns the exit code.
func printChecks(checks []replay.ExpectationResult) int {
	if len(checks) == 0 {
		fmt.Println("Fixture carries no expectations.")
		return 0
	}

	fmt.Printf("%-45s| %12s| %12s| %s\n", "Expectation", "Want", "Got", "Match")
	passes := 0
	for _, c := range checks {
		match := "DIFF"
		if c.Pass {
			match = "OK"
			passes++
		}
		fmt.Printf("%-45s| %12.6g| %12.6g| %s\n", c.Name, c.Want, c.Got, match)
	}

	diverge := len(checks) - passes
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", len(checks), passes, diverge)
	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion fixture-mode

// #region db-mode

// runDBMode rebuilds a stored run's report from its persisted samples and
// checks it against the report saved at run time.
func runDBMode(dbPath, runID string) int {
	if runID == "" {
		fmt.Fprintln(os.Stderr, "DB mode requires --run")
		return 2
	}

	store, err := results.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	run, err := store.GetRun(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get run: %v\n", err)
		return 2
	}
	samples, err := store.GetSamples(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get samples: %v\n", err)
		return 2
	}

	rebuilt, err := stats.BuildReport(samples, run.Confidence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rebuild report: %v\n", err)
		return 2
	}
	fmt.Println(rebuilt.Render())

	if run.ReportJSON == "" {
		fmt.Println("Run has no stored report to check against.")
		return 0
	}
	var stored stats.ComparisonReport
	if err := json.Unmarshal([]byte(run.ReportJSON), &stored); err != nil {
		fmt.Fprintf(os.Stderr, "parse stored report: %v\n", err)
		return 2
	}

	return printChecks(reportChecks(stored, rebuilt))
}

// reportChecks turns a stored report into expectations over the rebuilt one.
// NaN entries cannot round-trip through JSON and are skipped.
func reportChecks(stored, rebuilt stats.ComparisonReport) []replay.ExpectationResult {
	exp := replay.FixtureExpectation{Tolerance: 1e-9}
	for _, key := range stats.MetricKeys {
		s := stored.Summaries[key]
		exp.Summaries = append(exp.Summaries, replay.ExpectedSummary{Key: key, Mean: s.Mean, Std: s.Std})
	}
	for _, pt := range stored.Tests {
		if math.IsNaN(pt.T) {
			continue
		}
		exp.Tests = append(exp.Tests, replay.ExpectedTest{
			Metric: pt.Metric, Comparison: pt.Comparison, T: pt.T, P: pt.P,
		})
	}
	return replay.CheckExpectations(exp, rebuilt)
}

// #endregion db-mode
