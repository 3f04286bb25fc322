// Package core has the derivations of the maturity assessment: response
// scores, question gaps, goal selection, indicator utility, the scatter
// layout and the priority ranking. It also hosts the command executors.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/huangsam/maturity/core/algo"
	"github.com/huangsam/maturity/internal/chart"
	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/outwriter"
	"github.com/huangsam/maturity/internal/workbook"
	"github.com/huangsam/maturity/schema"
)

// ErrNoWorkbook is returned when a command needs a workbook and none was given.
var ErrNoWorkbook = errors.New("a workbook path is required")

// ExecutorFunc defines the function signature of every report command.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error

// SelectionFromConfig turns the validated goal and filter flags into a Selection.
func SelectionFromConfig(cfg *contract.Config) Selection {
	return Selection{
		Goals: cfg.Goals,
		Filter: QuestionFilter{
			Dimensions: cfg.Dimensions,
			Indicators: cfg.Indicators,
			Responses:  ParseResponses(cfg.Responses),
			Buckets:    ParseBuckets(cfg.Buckets),
		},
		Limit: cfg.ResultLimit,
	}
}

// LoadWorkbook reads the workbook named by the config.
func LoadWorkbook(cfg *contract.Config) (*schema.Workbook, error) {
	if cfg.WorkbookPath == "" {
		return nil, ErrNoWorkbook
	}
	return workbook.Load(cfg.WorkbookPath, workbook.Options{
		QuestionSheet: cfg.QuestionSheet,
		OverviewSheet: cfg.OverviewSheet,
	})
}

// GetReport loads the workbook, derives the full report and records the run
// in the history store when one is configured.
func GetReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) (*schema.Report, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		logReportHeader(cfg)
	}

	wb, err := LoadWorkbook(cfg)
	if err != nil {
		return nil, 0, err
	}
	report := BuildReport(wb, SelectionFromConfig(cfg))
	recordRun(ctx, cfg, mgr, start, report)
	return report, time.Since(start), nil
}

// logReportHeader prints the workbook and goal selection being processed.
func logReportHeader(cfg *contract.Config) {
	goals := "all"
	switch {
	case cfg.Goals == nil:
	case len(cfg.Goals) == 0:
		goals = "none"
	default:
		goals = fmt.Sprint(cfg.Goals)
	}
	_, _ = fmt.Fprintf(os.Stderr, "🔎 Workbook: %s (Goals: %s)\n", filepath.Base(cfg.WorkbookPath), goals)
}

// configParams is the selection stored with each run.
func configParams(cfg *contract.Config) map[string]any {
	return map[string]any{
		"goals":      cfg.Goals,
		"dimensions": cfg.Dimensions,
		"indicators": cfg.Indicators,
		"responses":  cfg.Responses,
		"buckets":    cfg.Buckets,
		"limit":      cfg.ResultLimit,
	}
}

// recordRun stores the run and its priorities. Failures only warn: history
// must never break a report.
func recordRun(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, start time.Time, report *schema.Report) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(ctx, start, report.Source, commandFromContext(ctx), configParams(cfg))
	if err != nil {
		contract.LogWarn("Run history initialization failed", err)
		return
	}
	if err := store.RecordPriorities(ctx, runID, report.Priorities); err != nil {
		contract.LogWarn("Recording priorities failed", err)
	}
	if err := store.EndRun(ctx, runID, time.Now(), len(report.Priorities)); err != nil {
		contract.LogWarn("Run history completion failed", err)
	}
}

// ExecuteGaps prints the question gap table.
func ExecuteGaps(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	report, duration, err := GetReport(WithCommand(ctx, "gaps"), cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteGaps(report.Questions, cfg, duration)
}

// ExecuteGoals prints the candidate goal columns and the active selection.
func ExecuteGoals(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	report, _, err := GetReport(WithCommand(ctx, "goals"), cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteGoals(report.Goals, report.Selected, cfg)
}

// ExecuteIndicators prints utility, gap and impact per indicator.
func ExecuteIndicators(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	report, duration, err := GetReport(WithCommand(ctx, "indicators"), cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteIndicators(report.Indicators, cfg, duration)
}

// ExecutePriorities prints the ranked measures.
func ExecutePriorities(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	report, duration, err := GetReport(WithCommand(ctx, "priorities"), cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WritePriorities(report.Priorities, cfg, duration)
}

// ExecuteQuestions prints the filtered questions ordered by number.
func ExecuteQuestions(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	report, _, err := GetReport(WithCommand(ctx, "questions"), cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteQuestions(SortByNumber(report.Questions), cfg)
}

// SortByNumber returns a copy of the questions in natural number order.
func SortByNumber(questions []schema.QuestionRecord) []schema.QuestionRecord {
	out := slices.Clone(questions)
	algo.SortByNumber(out)
	return out
}

// ExecuteCharts renders the three charts into the output directory.
func ExecuteCharts(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	report, duration, err := GetReport(WithCommand(ctx, "charts"), cfg, mgr)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	images, err := chart.RenderAll(ctx, report, chart.SizeInches(cfg.ChartWidth, cfg.ChartHeight))
	if err != nil {
		return err
	}
	for _, kind := range chart.AllKinds {
		png, ok := images[kind]
		if !ok {
			reason := chart.ErrNoQuestions
			if kind == chart.ScatterKind {
				reason = ErrNoPlottableData
			}
			contract.LogWarn(fmt.Sprintf("Skipped %s chart", kind), reason)
			continue
		}
		path := filepath.Join(cfg.OutDir, kind.FileName())
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote %s chart to %s\n", kind, path)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Completed in %v\n", duration)
	return nil
}
