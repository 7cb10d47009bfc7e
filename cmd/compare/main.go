package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/codec"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/logging"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/projection"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/results"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/rollout"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/trials"
)

// #region main
func main() {
	numTrials := flag.Int("trials", 30, "number of matched trials")
	stepBudget := flag.Int("budget", 200, "step budget per learned rollout")
	confidence := flag.Float64("confidence", 0.95, "two-sided confidence level")
	baseSeed := flag.Int64("seed", 1, "base seed; trial i runs under seed+i")
	workers := flag.Int("workers", 1, "parallel trial workers")
	optLevel := flag.Int("opt-level", 3, "baseline transpiler optimization level")
	project := flag.Bool("project", false, "print a 3-component projection of final observations")
	addr := flag.String("addr", envOr("SIDECAR_ADDR", "localhost:50051"), "sidecar gRPC address")
	dbPath := flag.String("db", envOr("EVAL_DB", "qopt_eval.db"), "path to results database")
	flag.Parse()

	config := trials.Config{
		NumTrials:        *numTrials,
		StepBudget:       *stepBudget,
		BaseSeed:         *baseSeed,
		Workers:          *workers,
		StripKinds:       []string{"save_statevector"},
		KeepTrajectories: *project,
	}
	clientConfig := codec.DefaultConfig()
	clientConfig.OptimizationLevel = *optLevel

	store, err := results.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	run, err := store.CreateRun(config, *confidence)
	if err != nil {
		log.Fatalf("failed to create run: %v", err)
	}

	// One dedicated client for the stateless baseline RPC; worker sessions
	// are dialed by the factory.
	baseline, err := codec.NewSidecarClient(*addr, clientConfig)
	if err != nil {
		log.Fatalf("failed to connect to sidecar at %s: %v", *addr, err)
	}
	defer baseline.Close()

	var mu sync.Mutex
	var sessions []*codec.SidecarClient
	factory := codec.NewSessionFactory(*addr, clientConfig, func(c *codec.SidecarClient) {
		mu.Lock()
		sessions = append(sessions, c)
		mu.Unlock()
	})
	defer func() {
		for _, c := range sessions {
			c.Close()
		}
	}()

	fmt.Printf("Run %s: %d trials, budget %d, seed %d, sidecar %s\n",
		run.RunID, config.NumTrials, config.StepBudget, config.BaseSeed, *addr)

	agg := trials.NewAggregator(factory, baseline, config)

	start := time.Now()
	samples, err := agg.Compare(context.Background())
	if err != nil {
		logAbort(store, run.RunID, err)
		log.Fatalf("comparison failed: %v", err)
	}

	for i := 0; i < config.NumTrials; i++ {
		logErr := logging.LogEvent(store.DB(), logging.ProvenanceEntry{
			RunID:    run.RunID,
			TrialIdx: i,
			Stage:    logging.StageRollout,
			Outcome:  logging.OutcomeOK,
		})
		if logErr != nil {
			log.Printf("provenance error: %v", logErr)
		}
	}

	report, err := stats.BuildReport(samples, *confidence)
	if err != nil {
		logAbort(store, run.RunID, err)
		log.Fatalf("report failed: %v", err)
	}

	if err := store.InsertSamples(run.RunID, samples); err != nil {
		log.Fatalf("failed to persist samples: %v", err)
	}
	if err := store.SaveReport(run.RunID, report); err != nil {
		log.Fatalf("failed to persist report: %v", err)
	}
	logErr := logging.LogEvent(store.DB(), logging.ProvenanceEntry{
		RunID:    run.RunID,
		TrialIdx: -1,
		Stage:    logging.StageReport,
		Outcome:  logging.OutcomeOK,
	})
	if logErr != nil {
		log.Printf("provenance error: %v", logErr)
	}

	fmt.Printf("\n%s\n", report.Render())
	fmt.Printf("Completed in %s, saved as run %s\n", time.Since(start).Round(time.Millisecond), run.RunID)

	if *project {
		printProjection(agg)
	}
}

// #endregion main

// #region projection-output

// printProjection reduces each trial's final observation to three components.
func printProjection(agg *trials.Aggregator) {
	trajs := agg.Trajectories()
	finals := make([]rollout.Observation, 0, len(trajs))
	for _, traj := range trajs {
		if len(traj.Steps) > 0 {
			finals = append(finals, traj.Steps[len(traj.Steps)-1].Observation)
		}
	}
	coords, err := projection.FitTransformObservations(finals)
	if err != nil {
		log.Printf("projection skipped: %v", err)
		return
	}

	fmt.Println("\nFinal-observation projection:")
	for i, c := range coords {
		fmt.Printf("  trial %2d: [%8.4f %8.4f %8.4f]\n", i, c[0], c[1], c[2])
	}
}

// #endregion projection-output

// #region helpers

func logAbort(store *results.Store, runID string, err error) {
	entry := logging.ProvenanceEntry{
		RunID:    runID,
		TrialIdx: -1,
		Stage:    logging.StageRollout,
		Outcome:  logging.OutcomeAbort,
		Reason:   err.Error(),
	}
	var trialErr *trials.TrialError
	if errors.As(err, &trialErr) {
		entry.TrialIdx = trialErr.Trial
	}
	if logErr := logging.LogEvent(store.DB(), entry); logErr != nil {
		log.Printf("provenance error: %v", logErr)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
