// Package cmd defines the command-line interface for maturity.
package cmd

import (
	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(indicatorsCmd)
	rootCmd.AddCommand(prioritiesCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or xlsx")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of priorities to display (0 = all)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("goals", "g", "", "Comma-separated goal columns to weigh utility with (default: all detected)")
	rootCmd.PersistentFlags().Bool("no-goals", false, "Ignore goal columns and use the precomputed Total Utility")
	rootCmd.PersistentFlags().String("dimension", "", "Comma-separated dimensions to keep")
	rootCmd.PersistentFlags().String("indicator", "", "Comma-separated indicators to keep")
	rootCmd.PersistentFlags().String("response", "", "Comma-separated current responses to keep")
	rootCmd.PersistentFlags().String("bucket", "", "Comma-separated action buckets to keep: none or limited or significant or extensive")
	rootCmd.PersistentFlags().String("question-sheet", schema.DefaultQuestionSheet, "Name of the assessment sheet")
	rootCmd.PersistentFlags().String("overview-sheet", schema.DefaultOverviewSheet, "Name of the overview sheet")
	rootCmd.PersistentFlags().String("history-backend", string(schema.NoneBackend), "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of chartsCmd to Viper
	chartsCmd.Flags().String("out-dir", contract.DefaultOutDir, "Directory to write the PNG charts to")
	chartsCmd.Flags().Int("chart-width", contract.DefaultChartWidth, "Chart width in inches")
	chartsCmd.Flags().Int("chart-height", contract.DefaultChartHeight, "Chart height in inches")
	if err := viper.BindPFlags(chartsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding charts flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address the dashboard listens on")
	serveCmd.Flags().Bool("watch", false, "Reload the workbook argument when the file changes")
	serveCmd.Flags().String("app-env", contract.DefaultAppEnv, "Logging environment: development or production")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
