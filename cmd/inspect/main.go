package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/logging"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/results"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to results database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/qopt_eval.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := results.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID      string  `json:"run_id"`
	NumTrials  int     `json:"num_trials"`
	StepBudget int     `json:"step_budget"`
	Confidence float64 `json:"confidence"`
	BaseSeed   int64   `json:"base_seed"`
	HasReport  bool    `json:"has_report"`
	CreatedAt  string  `json:"created_at"`
}

func runListMode(store *results.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, len(runs))
	for i, r := range runs {
		rows[i] = listRow{
			RunID:      r.RunID,
			NumTrials:  r.NumTrials,
			StepBudget: r.StepBudget,
			Confidence: r.Confidence,
			BaseSeed:   r.BaseSeed,
			HasReport:  r.ReportJSON != "",
			CreatedAt:  r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %6s  %6s  %5s  %6s  %-6s  %s\n",
		"Run", "Trials", "Budget", "Conf", "Seed", "Report", "Time")
	for _, r := range rows {
		report := "—"
		if r.HasReport {
			report = "yes"
		}
		fmt.Printf("%-10s  %6d  %6d  %5.2f  %6d  %-6s  %s\n",
			shortID(r.RunID), r.NumTrials, r.StepBudget, r.Confidence, r.BaseSeed, report, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	Run        listRow                  `json:"run"`
	Report     *stats.ComparisonReport  `json:"report,omitempty"`
	Provenance []logging.ProvenanceEntry `json:"provenance,omitempty"`
}

func runDetailMode(store *results.Store, runID string, jsonOut bool) error {
	run, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	out := detailOutput{
		Run: listRow{
			RunID:      run.RunID,
			NumTrials:  run.NumTrials,
			StepBudget: run.StepBudget,
			Confidence: run.Confidence,
			BaseSeed:   run.BaseSeed,
			HasReport:  run.ReportJSON != "",
			CreatedAt:  run.CreatedAt.Format("2006-01-02T15:04:05Z"),
		},
	}
	if run.ReportJSON != "" {
		var report stats.ComparisonReport
		if err := json.Unmarshal([]byte(run.ReportJSON), &report); err != nil {
			return fmt.Errorf("parse stored report: %w", err)
		}
		out.Report = &report
	}
	events, err := logging.ListEvents(store.DB(), runID)
	if err != nil {
		return err
	}
	out.Provenance = events

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Run:        %s\n", run.RunID)
	fmt.Printf("Created:    %s\n", out.Run.CreatedAt)
	fmt.Printf("Trials:     %d (budget %d, seed %d)\n", run.NumTrials, run.StepBudget, run.BaseSeed)
	fmt.Printf("Confidence: %.2f\n", run.Confidence)

	if out.Report != nil {
		fmt.Printf("\n%s", out.Report.Render())
	} else {
		fmt.Println("\nNo report stored for this run.")
	}

	if len(events) > 0 {
		fmt.Println("\nProvenance:")
		for _, e := range events {
			trial := "run"
			if e.TrialIdx >= 0 {
				trial = fmt.Sprintf("trial %d", e.TrialIdx)
			}
			line := fmt.Sprintf("  %-22s %-9s %-8s %s", e.CreatedAt.Format("2006-01-02T15:04:05Z"), trial, e.Stage, e.Outcome)
			if e.Reason != "" {
				line += " (" + e.Reason + ")"
			}
			fmt.Println(line)
		}
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
