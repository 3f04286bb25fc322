package history

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/parquet"
)

// ErrNoHistory is returned when an export finds no recorded run.
var ErrNoHistory = errors.New("no run history found to export")

// Export file suffixes appended to the user supplied output path.
const (
	RunsSuffix       = ".runs.parquet"
	PrioritiesSuffix = ".priorities.parquet"
)

// ExportHistory writes every run and priority of the store to Parquet files
// next to outputFile.
func ExportHistory(ctx context.Context, store contract.HistoryStore, outputFile string, w io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return ErrNoHistory
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return ErrNoHistory
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)

	runs, err := store.GetAllRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	priorities, err := store.GetAllPriorities(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve priorities: %w", err)
	}

	runsFile := outputFile + RunsSuffix
	if err := parquet.WriteFile(parquet.ConvertRuns(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d runs to: %s\n", len(runs), runsFile)

	prioritiesFile := outputFile + PrioritiesSuffix
	if err := parquet.WriteFile(parquet.ConvertRunPriorities(priorities), prioritiesFile); err != nil {
		return fmt.Errorf("failed to write priorities: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d priorities to: %s\n", len(priorities), prioritiesFile)
	return nil
}
