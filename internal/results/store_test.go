package results

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/trials"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSeries() stats.PairedSamples {
	return stats.PairedSamples{
		stats.DepthBefore:        {10, 12, 11},
		stats.DepthAfterLearned:  {6, 7, 6},
		stats.DepthAfterBaseline: {8, 9, 8},
		stats.FidelityBefore:     {0.80, 0.82, 0.81},
		stats.FidelityAfterLearn: {0.95, 0.96, 0.94},
		stats.FidelityAfterBase:  {0.90, 0.91, 0.89},
	}
}

func TestCreateRunAndGetRun(t *testing.T) {
	s := tempDB(t)

	config := trials.DefaultConfig()
	config.NumTrials = 3
	rec, err := s.CreateRun(config, 0.95)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if rec.RunID == "" {
		t.Fatal("expected non-empty run ID")
	}

	got, err := s.GetRun(rec.RunID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.NumTrials != 3 {
		t.Fatalf("NumTrials = %d, want 3", got.NumTrials)
	}
	if got.StepBudget != config.StepBudget {
		t.Fatalf("StepBudget = %d, want %d", got.StepBudget, config.StepBudget)
	}
	if got.Confidence != 0.95 {
		t.Fatalf("Confidence = %v, want 0.95", got.Confidence)
	}
	if got.BaseSeed != config.BaseSeed {
		t.Fatalf("BaseSeed = %d, want %d", got.BaseSeed, config.BaseSeed)
	}
	if got.ReportJSON != "" {
		t.Fatalf("expected empty report before SaveReport, got %q", got.ReportJSON)
	}
}

func TestSamplesRoundTrip(t *testing.T) {
	s := tempDB(t)
	rec, _ := s.CreateRun(trials.DefaultConfig(), 0.95)

	samples := sampleSeries()
	if err := s.InsertSamples(rec.RunID, samples); err != nil {
		t.Fatalf("InsertSamples: %v", err)
	}

	got, err := s.GetSamples(rec.RunID)
	if err != nil {
		t.Fatalf("GetSamples: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("expected %d series, got %d", len(samples), len(got))
	}
	for _, key := range stats.MetricKeys {
		want := samples[key]
		if len(got[key]) != len(want) {
			t.Fatalf("series %s: expected %d values, got %d", key, len(want), len(got[key]))
		}
		for i, v := range want {
			if got[key][i] != v {
				t.Fatalf("series %s[%d]: got %v, want %v", key, i, got[key][i], v)
			}
		}
	}
}

func TestSaveAndGetReport(t *testing.T) {
	s := tempDB(t)
	rec, _ := s.CreateRun(trials.DefaultConfig(), 0.95)

	report, err := stats.BuildReport(sampleSeries(), 0.95)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if err := s.SaveReport(rec.RunID, report); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	got, err := s.GetReport(rec.RunID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got.NumTrials != report.NumTrials {
		t.Fatalf("NumTrials = %d, want %d", got.NumTrials, report.NumTrials)
	}
	if got.Summaries[stats.DepthBefore].Mean != report.Summaries[stats.DepthBefore].Mean {
		t.Fatal("summary did not round-trip")
	}
	if len(got.Tests) != len(report.Tests) {
		t.Fatalf("expected %d tests, got %d", len(report.Tests), len(got.Tests))
	}
}

func TestSaveReportUnknownRun(t *testing.T) {
	s := tempDB(t)

	err := s.SaveReport("nonexistent-id", stats.ComparisonReport{})
	if err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestGetReportBeforeSave(t *testing.T) {
	s := tempDB(t)
	rec, _ := s.CreateRun(trials.DefaultConfig(), 0.95)

	_, err := s.GetReport(rec.RunID)
	if err == nil {
		t.Fatal("expected error before report is saved")
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := tempDB(t)

	_, err := s.GetRun("nonexistent-id")
	if err == nil {
		t.Fatal("expected error for nonexistent run")
	}
}

func TestListRuns(t *testing.T) {
	s := tempDB(t)
	s.CreateRun(trials.DefaultConfig(), 0.95)
	s.CreateRun(trials.DefaultConfig(), 0.99)

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestGetSamplesGapDetected(t *testing.T) {
	s := tempDB(t)
	rec, _ := s.CreateRun(trials.DefaultConfig(), 0.95)

	// Insert trial 0 and trial 2 but not trial 1.
	_, err := s.DB().Exec(
		`INSERT INTO trial_samples (run_id, trial_idx, metric, value) VALUES (?, 0, ?, 10), (?, 2, ?, 12)`,
		rec.RunID, stats.DepthBefore, rec.RunID, stats.DepthBefore,
	)
	if err != nil {
		t.Fatalf("seed samples: %v", err)
	}

	if _, err := s.GetSamples(rec.RunID); err == nil {
		t.Fatal("expected error for gapped trial indices")
	}
}

func TestInsertSamplesOnClosedDB(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewStore(filepath.Join(dir, "test.db"))
	rec, _ := s.CreateRun(trials.DefaultConfig(), 0.95)
	s.Close()

	if err := s.InsertSamples(rec.RunID, sampleSeries()); err == nil {
		t.Fatal("expected error on closed DB")
	}
}

func TestCreateRun_InsertFails(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	s := NewStoreWithDB(db)

	// Schema never created, so the insert must fail.
	if _, err := s.CreateRun(trials.DefaultConfig(), 0.95); err == nil {
		t.Fatal("expected error when runs table is missing")
	}
}

func TestNewStoreInvalidPath(t *testing.T) {
	_, err := NewStore(filepath.Join(string(os.PathSeparator), "nonexistent", "deep", "path", "test.db"))
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestDBAccessor(t *testing.T) {
	s := tempDB(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil *sql.DB")
	}
}
