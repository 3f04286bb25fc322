package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/history"
	"github.com/huangsam/maturity/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads the minimal configuration needed for history operations.
// This avoids workbook checks and output validation for simple store access.
func historySetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := historyBackendFromViper()
	if err != nil {
		return err
	}
	if err := history.InitHistory(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historyMigrateSetup loads the configuration of the migrate command.
// It does NOT open the store or create tables, so migrations can run on a
// fresh database.
func historyMigrateSetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := historyBackendFromViper()
	if err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	return nil
}

// historyCmd focuses on run history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the run history and its exports",
	Long: `Manage the history of report runs.

When a history backend is configured, every report command stores:
- Run metadata (timestamp, workbook, command, selection, duration)
- The ranked priorities of the run

This shows how priorities move as an assessment is updated.

Supported backends: SQLite, MySQL, PostgreSQL, or None (default, disabled)

Subcommands:
  status  - Show run history statistics
  export  - Export runs and priorities to Parquet
  clear   - Remove all run history
  migrate - Run database schema migrations

Examples:
  # Record runs in the default SQLite file
  export MATURITY_HISTORY_BACKEND=sqlite
  maturity priorities assessment.xlsx
  maturity history status`,
}

// historyStatusCmd shows run history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show the backend, the number of runs and priorities stored, the last and
oldest run and the size of each table.

Examples:
  maturity history status --history-backend sqlite`,
	PreRunE: historySetup,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := history.Manager.GetHistoryStore().GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyClearCmd removes the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored runs and priorities",
	Long: `Delete every stored run and its priorities.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  maturity history export --output-file backup
  maturity history clear`,
	PreRunE: historySetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.Manager.GetHistoryStore().Clear(rootCtx); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyExportCmd exports the run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run history to Parquet for BI tools",
	Long: `Export every stored run and priority to Parquet.

Two files are written next to --output-file:
- <output-file>.runs.parquet
- <output-file>.priorities.parquet

Requires: --output-file parameter

Examples:
  maturity history export --output-file history
  duckdb -c "SELECT * FROM read_parquet('history.priorities.parquet') LIMIT 10"`,
	PreRunE: historySetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExportHistory(rootCtx, history.Manager.GetHistoryStore(), cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage the schema version of the run history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  maturity history migrate --history-backend sqlite

  # Rollback to initial state
  maturity history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
