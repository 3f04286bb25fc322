// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Sheet names of the xlsx renditions.
const (
	gapsSheet       = "Gaps"
	goalsSheet      = "Goals"
	indicatorsSheet = "Indicators"
	questionsSheet  = "Questions"
)

// Empty-state messages of the text renditions.
const (
	NoPrioritiesMessage = "No suitable measures found."
	NoQuestionsMessage  = "No questions match the current filters."
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteGaps prints the question gap table using the configured output format.
func (ow *OutWriter) WriteGaps(questions []schema.QuestionRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteGapResults(questions, cfg, duration)
}

// WriteGoals prints the candidate goal columns using the configured output format.
func (ow *OutWriter) WriteGoals(goals, selected []schema.GoalColumn, cfg *contract.Config) error {
	return WriteGoalResults(goals, selected, cfg)
}

// WriteIndicators prints the indicator summaries using the configured output format.
func (ow *OutWriter) WriteIndicators(indicators []schema.IndicatorSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteIndicatorResults(indicators, cfg, duration)
}

// WritePriorities prints the ranked priorities using the configured output format.
func (ow *OutWriter) WritePriorities(entries []schema.PriorityEntry, cfg *contract.Config, duration time.Duration) error {
	return WritePriorityResults(entries, cfg, duration)
}

// WriteQuestions prints the question list using the configured output format.
func (ow *OutWriter) WriteQuestions(questions []schema.QuestionRecord, cfg *contract.Config) error {
	return WriteQuestionResults(questions, cfg)
}

// renderTable writes a right-aligned table with the shared look.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// writeFooter prints the summary lines that close every text table.
func writeFooter(w io.Writer, summary string, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return err
	}
	if duration <= 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Completed in %v. History backend: %s\n", duration.Round(time.Millisecond), cfg.HistoryBackend)
	return err
}
