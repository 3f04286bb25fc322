package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd starts the web dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve [workbook]",
	Short: "Start the web dashboard.",
	Long: `Serve the assessment dashboard over HTTP.

Workbooks are uploaded in the browser or passed as the argument. Each page
recomputes its tables and charts from the stored workbook and the filters in
its URL, so links can be shared.

Tabs:
- Assessment Results: maturity chart filtered by response and dimension
- Gap Analysis: gap chart filtered by action bucket and dimension
- Prioritization: alignment scatter, ranked measures and priorities.xlsx
- All Questions: question list filtered by dimension and indicator

Examples:
  # Start an empty dashboard
  maturity serve

  # Serve a workbook and reload it whenever it is saved
  maturity serve assessment.xlsx --watch

  # Listen on every interface with JSON logs
  maturity serve --addr :8050 --app-env production`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runServer(); err != nil {
			contract.LogFatal("Cannot run dashboard", err)
		}
	},
}

func runServer() error {
	logger, err := contract.NewLogger(cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.WorkbookPath != "" {
		if _, err := srv.LoadFile(cfg.WorkbookPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(os.Stderr, "🌐 Dashboard on http://%s\n", cfg.Addr)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("dashboard stopped")
	return nil
}
