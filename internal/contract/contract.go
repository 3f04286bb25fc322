// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/maturity/schema"
)

// HistoryManager defines the interface for accessing the history store.
// This allows the persistence layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking runs and the priorities they produced.
type HistoryStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(ctx context.Context, startTime time.Time, workbook, command string, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(ctx context.Context, runID int64, endTime time.Time, totalPriorities int) error

	// RecordPriorities stores the ranked priorities of a run
	RecordPriorities(ctx context.Context, runID int64, entries []schema.PriorityEntry) error

	// GetStatus returns status information about the history store
	GetStatus(ctx context.Context) (schema.HistoryStatus, error)

	// GetAllRuns returns every recorded run ordered by ID
	GetAllRuns(ctx context.Context) ([]schema.HistoryRun, error)

	// GetAllPriorities returns every recorded priority ordered by run and rank
	GetAllPriorities(ctx context.Context) ([]schema.HistoryPriority, error)

	// Clear removes every run and priority
	Clear(ctx context.Context) error

	// Close closes the underlying connection
	Close() error
}
