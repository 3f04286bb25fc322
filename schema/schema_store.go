package schema

import "time"

// HistoryRun represents a row from the maturity_runs table.
type HistoryRun struct {
	RunID           int64
	RunKey          string
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	Workbook        string
	Command         string
	TotalPriorities int32
	ConfigParams    *string
}

// HistoryPriority represents a row from the maturity_priorities table.
type HistoryPriority struct {
	RunID       int64
	Priority    int32
	Indicator   string
	Number      string
	Measure     string
	Level       int32
	TotalImpact float64
}

// HistoryStatus summarizes the history store.
type HistoryStatus struct {
	Backend         string
	Connected       bool
	TotalRuns       int64
	LastRunID       int64
	LastRunTime     time.Time
	OldestRunTime   time.Time
	TotalPriorities int64
	TableSizes      map[string]int64
}
