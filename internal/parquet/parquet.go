// Package parquet provides data structures and functions for exporting maturity
// tables and run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/maturity/schema"
	"github.com/parquet-go/parquet-go"
)

// QuestionGap is one question with its gap and action bucket.
type QuestionGap struct {
	Indicator   string `parquet:"indicator,snappy"`
	Dimension   string `parquet:"dimension,snappy"`
	Number      string `parquet:"number,snappy"`
	Question    string `parquet:"question,snappy"`
	Level       int32  `parquet:"level,snappy"`
	Current     string `parquet:"current,snappy"`
	Target      string `parquet:"target,snappy"`
	Score       *int32 `parquet:"score,optional,snappy"`
	TargetScore *int32 `parquet:"target_score,optional,snappy"`
	Gap         int32  `parquet:"gap,snappy"`
	Bucket      string `parquet:"bucket,snappy"`
}

// Indicator is the per-indicator aggregate.
type Indicator struct {
	Indicator    string   `parquet:"indicator,snappy"`
	Dimension    string   `parquet:"dimension,snappy"`
	TotalUtility *float64 `parquet:"total_utility,optional,snappy"`
	MaturityGap  *float64 `parquet:"maturity_gap,optional,snappy"`
	TotalImpact  *float64 `parquet:"total_impact,optional,snappy"`
	Eligible     bool     `parquet:"eligible,snappy"`
}

// Goal is one candidate goal column.
type Goal struct {
	Name     string `parquet:"name,snappy"`
	Index    int32  `parquet:"column_index,snappy"`
	Selected bool   `parquet:"selected,snappy"`
}

// Priority is one ranked measure.
type Priority struct {
	Priority      int32   `parquet:"priority,snappy"`
	Indicator     string  `parquet:"indicator,snappy"`
	Number        string  `parquet:"number,snappy"`
	Measure       string  `parquet:"measure,snappy"`
	MaturityLevel string  `parquet:"maturity_level,snappy"`
	TotalImpact   float64 `parquet:"total_impact,snappy"`
}

// Run represents a single recorded run.
// This struct maps to the maturity_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunKey is the UUID assigned when the run began
	RunKey string `parquet:"run_key,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Workbook is the path of the workbook the run read
	Workbook string `parquet:"workbook,snappy"`

	// Command is the CLI command that produced the run
	Command string `parquet:"command,snappy"`

	// TotalPriorities is the number of priorities the run ranked
	TotalPriorities int32 `parquet:"total_priorities,snappy"`

	// ConfigParams contains the JSON-encoded selection (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunPriority is one priority recorded by a run.
// This struct maps to the maturity_priorities database table.
type RunPriority struct {
	RunID       int64   `parquet:"run_id,snappy"`
	Priority    int32   `parquet:"priority,snappy"`
	Indicator   string  `parquet:"indicator,snappy"`
	Number      string  `parquet:"number,snappy"`
	Measure     string  `parquet:"measure,snappy"`
	Level       int32   `parquet:"level,snappy"`
	TotalImpact float64 `parquet:"total_impact,snappy"`
}

// Write writes rows of any tagged struct to w as one Parquet file.
func Write[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteFile writes rows to a new Parquet file at outputPath.
func WriteFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func optionalInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	out := int32(*v)
	return &out
}

// ConvertQuestions converts question records for Parquet export.
func ConvertQuestions(questions []schema.QuestionRecord) []QuestionGap {
	result := make([]QuestionGap, len(questions))
	for i, q := range questions {
		result[i] = QuestionGap{
			Indicator:   q.Indicator,
			Dimension:   q.Dimension,
			Number:      q.Number,
			Question:    q.Question,
			Level:       int32(q.Level),
			Current:     q.Current,
			Target:      q.Target,
			Score:       optionalInt32(q.Score),
			TargetScore: optionalInt32(q.TargetScore),
			Gap:         int32(q.Gap),
			Bucket:      string(q.Bucket),
		}
	}
	return result
}

// ConvertIndicators converts indicator summaries for Parquet export.
func ConvertIndicators(indicators []schema.IndicatorSummary) []Indicator {
	result := make([]Indicator, len(indicators))
	for i, ind := range indicators {
		result[i] = Indicator{
			Indicator:    ind.Indicator,
			Dimension:    ind.Dimension,
			TotalUtility: ind.TotalUtility,
			MaturityGap:  ind.MaturityGap,
			TotalImpact:  ind.TotalImpact,
			Eligible:     ind.Eligible,
		}
	}
	return result
}

// ConvertGoals converts goal columns for Parquet export, flagging the selected ones.
func ConvertGoals(goals, selected []schema.GoalColumn) []Goal {
	picked := make(map[int]struct{}, len(selected))
	for _, g := range selected {
		picked[g.Index] = struct{}{}
	}
	result := make([]Goal, len(goals))
	for i, g := range goals {
		_, ok := picked[g.Index]
		result[i] = Goal{Name: g.Name, Index: int32(g.Index), Selected: ok}
	}
	return result
}

// ConvertPriorities converts priority entries for Parquet export.
func ConvertPriorities(entries []schema.PriorityEntry) []Priority {
	result := make([]Priority, len(entries))
	for i, e := range entries {
		result[i] = Priority{
			Priority:      int32(e.Priority),
			Indicator:     e.Indicator,
			Number:        e.Number,
			Measure:       e.Measure,
			MaturityLevel: e.Level.Percent(),
			TotalImpact:   e.TotalImpact,
		}
	}
	return result
}

// ConvertRuns converts history runs for Parquet export.
func ConvertRuns(records []schema.HistoryRun) []Run {
	result := make([]Run, len(records))
	for i, r := range records {
		result[i] = Run{
			RunID:           r.RunID,
			RunKey:          r.RunKey,
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			RunDurationMs:   r.RunDurationMs,
			Workbook:        r.Workbook,
			Command:         r.Command,
			TotalPriorities: r.TotalPriorities,
			ConfigParams:    r.ConfigParams,
		}
	}
	return result
}

// ConvertRunPriorities converts history priorities for Parquet export.
func ConvertRunPriorities(records []schema.HistoryPriority) []RunPriority {
	result := make([]RunPriority, len(records))
	for i, r := range records {
		result[i] = RunPriority(r)
	}
	return result
}
