package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-event
// LogEvent writes a provenance entry to the provenance_log table.
func LogEvent(db *sql.DB, entry ProvenanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var trialPtr interface{}
	if entry.TrialIdx >= 0 {
		trialPtr = entry.TrialIdx
	}

	_, err := db.Exec(
		`INSERT INTO provenance_log (run_id, trial_idx, stage, outcome, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		trialPtr,
		entry.Stage,
		entry.Outcome,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}
// #endregion log-event

// #region list-events
// ListEvents returns a run's provenance rows in insertion order.
func ListEvents(db *sql.DB, runID string) ([]ProvenanceEntry, error) {
	rows, err := db.Query(
		`SELECT run_id, trial_idx, stage, outcome, reason, created_at
		 FROM provenance_log WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var entries []ProvenanceEntry
	for rows.Next() {
		var e ProvenanceEntry
		var trialIdx sql.NullInt64
		var reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.RunID, &trialIdx, &e.Stage, &e.Outcome, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.TrialIdx = -1
		if trialIdx.Valid {
			e.TrialIdx = int(trialIdx.Int64)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion list-events

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
