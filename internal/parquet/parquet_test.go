package parquet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/maturity/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func int32Ptr(v int32) *int32 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func readAll[T any](t *testing.T, r io.ReaderAt) []T {
	t.Helper()
	reader := parquet.NewGenericReader[T](r)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return rows[:n]
}

func TestRunStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(Run))
	require.NotNil(t, s)

	for _, colName := range []string{
		"run_id",
		"run_key",
		"start_time",
		"end_time",
		"run_duration_ms",
		"workbook",
		"command",
		"total_priorities",
		"config_params",
	} {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col)
	}
}

func TestWrite_Questions(t *testing.T) {
	questions := []schema.QuestionRecord{
		{Indicator: "Data Quality", Number: "1", Question: "Q1", Level: schema.Readiness, Score: intPtr(1), TargetScore: intPtr(4), Gap: 3, Bucket: schema.Extensive},
		{Indicator: "Data Quality", Number: "2", Question: "Q2", Level: schema.Initial, Gap: 0, Bucket: schema.NoAction},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ConvertQuestions(questions)))

	rows := readAll[QuestionGap](t, bytes.NewReader(buf.Bytes()))
	require.Len(t, rows, 2)
	assert.Equal(t, "extensive", rows[0].Bucket)
	require.NotNil(t, rows[0].Score)
	assert.Equal(t, int32(1), *rows[0].Score)
	assert.Equal(t, int32(3), rows[0].Gap)
	assert.Nil(t, rows[1].Score)
	assert.Nil(t, rows[1].TargetScore)
	assert.Equal(t, int32(2), rows[1].Level)
}

func TestWriteFile_Runs(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(1500 * time.Millisecond)
	data := ConvertRuns([]schema.HistoryRun{
		{RunID: 1, RunKey: "a", StartTime: start, EndTime: timePtr(end), RunDurationMs: int32Ptr(1500), Workbook: "wb.xlsx", Command: "priorities", TotalPriorities: 3, ConfigParams: stringPtr(`{"limit":0}`)},
		{RunID: 2, RunKey: "b", StartTime: start, Workbook: "wb.xlsx", Command: "gaps"},
	})

	outputPath := filepath.Join(t.TempDir(), "runs.parquet")
	require.NoError(t, WriteFile(data, outputPath))

	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows := readAll[Run](t, f)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].RunID)
	require.NotNil(t, rows[0].EndTime)
	assert.WithinDuration(t, end, *rows[0].EndTime, time.Nanosecond)
	require.NotNil(t, rows[0].ConfigParams)
	assert.Equal(t, `{"limit":0}`, *rows[0].ConfigParams)
	assert.Nil(t, rows[1].EndTime)
	assert.Nil(t, rows[1].RunDurationMs)
	assert.Nil(t, rows[1].ConfigParams)
}

func TestWriteFile_Empty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteFile([]RunPriority{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile([]Goal{}, filepath.Join(t.TempDir(), "missing", "goals.parquet"))
	assert.Error(t, err)
}

func TestConvertGoals(t *testing.T) {
	goals := []schema.GoalColumn{{Name: "Efficiency", Index: 5}, {Name: "Resilience", Index: 7}}
	got := ConvertGoals(goals, goals[1:])
	assert.Equal(t, []Goal{
		{Name: "Efficiency", Index: 5, Selected: false},
		{Name: "Resilience", Index: 7, Selected: true},
	}, got)
}

func TestConvertIndicatorsAndPriorities(t *testing.T) {
	indicators := ConvertIndicators([]schema.IndicatorSummary{
		{Indicator: "Data Quality", TotalUtility: floatPtr(0.5), Eligible: true},
	})
	require.Len(t, indicators, 1)
	assert.Nil(t, indicators[0].MaturityGap)
	assert.InDelta(t, 0.5, *indicators[0].TotalUtility, 1e-9)

	priorities := ConvertPriorities([]schema.PriorityEntry{
		{Priority: 1, Indicator: "Data Quality", Number: "3", Measure: "Q3", Level: schema.Intermediate, TotalImpact: 0.4},
	})
	require.Len(t, priorities, 1)
	assert.Equal(t, "75%", priorities[0].MaturityLevel)
	assert.Equal(t, int32(1), priorities[0].Priority)

	history := ConvertRunPriorities([]schema.HistoryPriority{{RunID: 4, Priority: 2, Measure: "Q", Level: 3, TotalImpact: 0.1}})
	assert.Equal(t, RunPriority{RunID: 4, Priority: 2, Measure: "Q", Level: 3, TotalImpact: 0.1}, history[0])
}
