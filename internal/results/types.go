package results

import "time"

// #region run-record
// RunRecord is one persisted comparison run. ReportJSON is empty until the
// run's report has been saved.
type RunRecord struct {
	RunID      string
	NumTrials  int
	StepBudget int
	Confidence float64
	BaseSeed   int64
	CreatedAt  time.Time
	ReportJSON string
}
// #endregion run-record

// #region sample-row
// SampleRow is one metric value from one trial of a run.
type SampleRow struct {
	RunID    string
	TrialIdx int
	Metric   string
	Value    float64
}
// #endregion sample-row
