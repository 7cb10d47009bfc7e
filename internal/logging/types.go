package logging

import "time"

// #region provenance-entry
// ProvenanceEntry is a single row in the provenance_log table. TrialIdx < 0
// marks a run-level event with no owning trial.
type ProvenanceEntry struct {
	RunID     string
	TrialIdx  int
	Stage     string // "reset" | "rollout" | "baseline" | "report"
	Outcome   string // "ok" | "abort"
	Reason    string
	CreatedAt time.Time
}
// #endregion provenance-entry

// #region stages
// Stage names for provenance rows.
const (
	StageReset    = "reset"
	StageRollout  = "rollout"
	StageBaseline = "baseline"
	StageReport   = "report"
)

// Outcome values for provenance rows.
const (
	OutcomeOK    = "ok"
	OutcomeAbort = "abort"
)
// #endregion stages
