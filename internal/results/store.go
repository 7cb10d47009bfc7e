package results

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/trials"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	num_trials    INTEGER NOT NULL,
	step_budget   INTEGER NOT NULL,
	confidence    REAL NOT NULL,
	base_seed     INTEGER NOT NULL,
	created_at    TEXT NOT NULL,
	report_json   TEXT
);

CREATE TABLE IF NOT EXISTS trial_samples (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	trial_idx     INTEGER NOT NULL,
	metric        TEXT NOT NULL,
	value         REAL NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS provenance_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	trial_idx     INTEGER,
	stage         TEXT NOT NULL,
	outcome       TEXT NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`
// #endregion schema

// #region store-struct
// Store persists comparison runs in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// NewStoreWithDB wraps an existing database handle. The caller owns schema
// setup and teardown.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region create-run
// CreateRun inserts a new run row from a comparison config and a confidence
// level, returning the generated run ID.
func (s *Store) CreateRun(config trials.Config, confidence float64) (RunRecord, error) {
	rec := RunRecord{
		RunID:      uuid.New().String(),
		NumTrials:  config.NumTrials,
		StepBudget: config.StepBudget,
		Confidence: confidence,
		BaseSeed:   config.BaseSeed,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, num_trials, step_budget, confidence, base_seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.NumTrials, rec.StepBudget, rec.Confidence, rec.BaseSeed,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}
// #endregion create-run

// #region insert-samples
// InsertSamples writes every metric series of a run atomically. Arrays under
// each key are index-aligned, so rows are keyed (trial_idx, metric).
func (s *Store) InsertSamples(runID string, samples stats.PairedSamples) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO trial_samples (run_id, trial_idx, metric, value) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, metric := range stats.MetricKeys {
		for i, v := range samples[metric] {
			if _, err := stmt.Exec(runID, i, metric, v); err != nil {
				return fmt.Errorf("insert sample %s[%d]: %w", metric, i, err)
			}
		}
	}
	return tx.Commit()
}
// #endregion insert-samples

// #region save-report
// SaveReport attaches the final report to its run.
func (s *Store) SaveReport(runID string, report stats.ComparisonReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	res, err := s.db.Exec(
		`UPDATE runs SET report_json = ? WHERE run_id = ?`, string(body), runID,
	)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}
// #endregion save-report

// #region get-run
// GetRun retrieves a run row by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var createdStr string
	var reportJSON sql.NullString

	err := s.db.QueryRow(
		`SELECT run_id, num_trials, step_budget, confidence, base_seed, created_at, report_json
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.NumTrials, &rec.StepBudget, &rec.Confidence, &rec.BaseSeed,
		&createdStr, &reportJSON)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	if reportJSON.Valid {
		rec.ReportJSON = reportJSON.String
	}
	return rec, nil
}
// #endregion get-run

// #region get-report
// GetReport unmarshals the stored report of a run.
func (s *Store) GetReport(runID string) (stats.ComparisonReport, error) {
	rec, err := s.GetRun(runID)
	if err != nil {
		return stats.ComparisonReport{}, err
	}
	if rec.ReportJSON == "" {
		return stats.ComparisonReport{}, fmt.Errorf("run %s has no report", runID)
	}
	var report stats.ComparisonReport
	if err := json.Unmarshal([]byte(rec.ReportJSON), &report); err != nil {
		return stats.ComparisonReport{}, fmt.Errorf("unmarshal report: %w", err)
	}
	return report, nil
}
// #endregion get-report

// #region get-samples
// GetSamples reconstructs a run's metric series, ordered by trial index.
func (s *Store) GetSamples(runID string) (stats.PairedSamples, error) {
	rows, err := s.db.Query(
		`SELECT trial_idx, metric, value FROM trial_samples
		 WHERE run_id = ? ORDER BY metric, trial_idx`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("get samples: %w", err)
	}
	defer rows.Close()

	samples := stats.PairedSamples{}
	for rows.Next() {
		var idx int
		var metric string
		var value float64
		if err := rows.Scan(&idx, &metric, &value); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		if idx != len(samples[metric]) {
			return nil, fmt.Errorf("samples for %s have a gap at trial %d", metric, idx)
		}
		samples[metric] = append(samples[metric], value)
	}
	return samples, rows.Err()
}
// #endregion get-samples

// #region list-runs
// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, num_trials, step_budget, confidence, base_seed, created_at, report_json
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdStr string
		var reportJSON sql.NullString
		if err := rows.Scan(&rec.RunID, &rec.NumTrials, &rec.StepBudget, &rec.Confidence,
			&rec.BaseSeed, &createdStr, &reportJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if reportJSON.Valid {
			rec.ReportJSON = reportJSON.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-runs
