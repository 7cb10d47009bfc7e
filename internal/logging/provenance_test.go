package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE provenance_log (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id     TEXT NOT NULL,
		trial_idx  INTEGER,
		stage      TEXT NOT NULL,
		outcome    TEXT NOT NULL,
		reason     TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-event-tests
func TestLogEvent_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := ProvenanceEntry{
		RunID:     "run-1",
		TrialIdx:  4,
		Stage:     StageRollout,
		Outcome:   OutcomeOK,
		Reason:    "",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogEvent(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM provenance_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var runID, stage string
	var trialIdx int
	db.QueryRow("SELECT run_id, trial_idx, stage FROM provenance_log").Scan(&runID, &trialIdx, &stage)
	if runID != "run-1" {
		t.Errorf("expected run_id 'run-1', got %q", runID)
	}
	if trialIdx != 4 {
		t.Errorf("expected trial_idx 4, got %d", trialIdx)
	}
	if stage != StageRollout {
		t.Errorf("expected stage %q, got %q", StageRollout, stage)
	}
}

func TestLogEvent_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := ProvenanceEntry{
		RunID:   "run-2",
		Stage:   StageReport,
		Outcome: OutcomeOK,
	}

	before := time.Now().UTC()
	if err := LogEvent(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM provenance_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogEvent_RunLevelEntry(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := ProvenanceEntry{
		RunID:    "run-3",
		TrialIdx: -1,
		Stage:    StageReport,
		Outcome:  OutcomeAbort,
		Reason:   "insufficient samples",
	}

	if err := LogEvent(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var trialIdx sql.NullInt64
	db.QueryRow("SELECT trial_idx FROM provenance_log").Scan(&trialIdx)
	if trialIdx.Valid {
		t.Error("expected NULL trial_idx for run-level entry")
	}
}

func TestLogEvent_EmptyReason(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := ProvenanceEntry{
		RunID:   "run-4",
		Stage:   StageBaseline,
		Outcome: OutcomeOK,
		Reason:  "",
	}

	if err := LogEvent(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reason sql.NullString
	db.QueryRow("SELECT reason FROM provenance_log").Scan(&reason)
	if reason.Valid {
		t.Error("expected NULL reason for empty string")
	}
}

func TestLogEvent_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	entry := ProvenanceEntry{
		RunID:   "run-5",
		Stage:   StageReset,
		Outcome: OutcomeAbort,
	}

	if err := LogEvent(db, entry); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-event-tests

// #region list-events-tests
func TestListEvents_Ordering(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	stages := []string{StageReset, StageRollout, StageBaseline, StageReport}
	for i, stage := range stages {
		idx := i
		if stage == StageReport {
			idx = -1
		}
		err := LogEvent(db, ProvenanceEntry{
			RunID:    "run-6",
			TrialIdx: idx,
			Stage:    stage,
			Outcome:  OutcomeOK,
		})
		if err != nil {
			t.Fatalf("LogEvent %s: %v", stage, err)
		}
	}

	entries, err := ListEvents(db, "run-6")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(entries) != len(stages) {
		t.Fatalf("expected %d entries, got %d", len(stages), len(entries))
	}
	for i, stage := range stages {
		if entries[i].Stage != stage {
			t.Errorf("entry %d: stage %q, want %q", i, entries[i].Stage, stage)
		}
	}
	if entries[3].TrialIdx != -1 {
		t.Errorf("run-level entry TrialIdx = %d, want -1", entries[3].TrialIdx)
	}
}

func TestListEvents_FiltersByRun(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	LogEvent(db, ProvenanceEntry{RunID: "run-a", Stage: StageReset, Outcome: OutcomeOK})
	LogEvent(db, ProvenanceEntry{RunID: "run-b", Stage: StageReset, Outcome: OutcomeOK})

	entries, err := ListEvents(db, "run-a")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(entries) != 1 || entries[0].RunID != "run-a" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

// #endregion list-events-tests

// #region null-if-empty-tests
func TestNullIfEmpty_Empty(t *testing.T) {
	result := nullIfEmpty("")
	if result != nil {
		t.Errorf("expected nil for empty string, got %v", result)
	}
}

func TestNullIfEmpty_NonEmpty(t *testing.T) {
	result := nullIfEmpty("hello")
	if result != "hello" {
		t.Errorf("expected 'hello', got %v", result)
	}
}

// #endregion null-if-empty-tests
