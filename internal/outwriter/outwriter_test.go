package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleQuestions() []schema.QuestionRecord {
	return []schema.QuestionRecord{
		{
			Indicator: "Data Governance | 数据治理", Dimension: "People & Culture", Number: "1",
			Question: "Is there a data owner?", Current: "Not implemented yet", Target: "Fully implemented",
			Response: schema.NotImplemented, Level: schema.Readiness,
			Score: intPtr(1), TargetScore: intPtr(4), Gap: 3, Bucket: schema.Extensive,
		},
		{
			Indicator: "Data Governance | 数据治理", Dimension: "People & Culture", Number: "2",
			Question: "Is there a glossary?", Current: "Don't know", Target: "",
			Response: schema.DontKnow, Level: schema.Initial,
			Score: intPtr(0), Gap: 0, Bucket: schema.NoAction,
		},
	}
}

func samplePriorities() []schema.PriorityEntry {
	return []schema.PriorityEntry{
		{Priority: 1, Indicator: "Data Governance", Number: "1", Measure: "Is there a data owner?", Level: schema.Readiness, TotalImpact: 0.456},
	}
}

func sampleIndicators() []schema.IndicatorSummary {
	return []schema.IndicatorSummary{
		{Indicator: "Data Governance", Dimension: "People & Culture", TotalUtility: floatPtr(0.5), MaturityGap: floatPtr(0.25), TotalImpact: floatPtr(0.126), Eligible: true},
		{Indicator: "Automation", Dimension: "Engineering", MaturityGap: floatPtr(0.1)},
	}
}

func testConfig(output schema.OutputMode, outputFile string) *contract.Config {
	return &contract.Config{
		Output:         output,
		OutputFile:     outputFile,
		Precision:      2,
		Width:          200,
		HistoryBackend: schema.NoneBackend,
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteGapResults(t *testing.T) {
	dir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(dir, "gaps.csv")
		require.NoError(t, WriteGapResults(sampleQuestions(), testConfig(schema.CSVOut, path), time.Second))
		lines := strings.Split(strings.TrimSpace(readFile(t, path)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, strings.Join(gapsHeader, ","), lines[0])
		assert.Contains(t, lines[1], ",25%,Not implemented yet,Fully implemented,1,4,3,Extensive action")
		assert.Contains(t, lines[2], ",0,,0,No action")
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "gaps.json")
		require.NoError(t, WriteGapResults(sampleQuestions(), testConfig(schema.JSONOut, path), time.Second))
		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(readFile(t, path)), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "extensive", got[0]["bucket"])
		assert.Equal(t, "25% - Readiness", got[0]["level_label"])
		assert.Nil(t, got[1]["target_score"])
	})

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(dir, "gaps.txt")
		require.NoError(t, WriteGapResults(sampleQuestions(), testConfig(schema.TextOut, path), time.Second))
		out := readFile(t, path)
		assert.Contains(t, out, "Is there a data owner?")
		assert.Contains(t, out, "Data Governance")
		assert.NotContains(t, out, "数据治理")
		assert.Contains(t, out, "Showing 2 questions (extensive: 1, significant: 0, limited: 0)")
		assert.Contains(t, out, "History backend: none")
	})

	t.Run("xlsx", func(t *testing.T) {
		path := filepath.Join(dir, "gaps.xlsx")
		require.NoError(t, WriteGapResults(sampleQuestions(), testConfig(schema.XLSXOut, path), 0))
		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		rows, err := f.GetRows(gapsSheet)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("parquet", func(t *testing.T) {
		path := filepath.Join(dir, "gaps.parquet")
		require.NoError(t, WriteGapResults(sampleQuestions(), testConfig(schema.ParquetOut, path), 0))
		assert.True(t, strings.HasPrefix(readFile(t, path), "PAR1"))
	})
}

func TestWritePriorityResults(t *testing.T) {
	dir := t.TempDir()

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(dir, "priorities.txt")
		require.NoError(t, WritePriorityResults(samplePriorities(), testConfig(schema.TextOut, path), time.Second))
		out := readFile(t, path)
		assert.Contains(t, out, "0.46")
		assert.Contains(t, out, "25%")
		assert.Contains(t, out, "Showing 1 prioritized measures")
	})

	t.Run("empty text", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, WritePriorityResults(nil, testConfig(schema.TextOut, path), time.Second))
		assert.Equal(t, NoPrioritiesMessage+"\n", readFile(t, path))
	})

	t.Run("csv precision", func(t *testing.T) {
		path := filepath.Join(dir, "priorities.csv")
		cfg := testConfig(schema.CSVOut, path)
		cfg.Precision = 3
		require.NoError(t, WritePriorityResults(samplePriorities(), cfg, 0))
		assert.Equal(t, "priority,indicator,number,measure,maturity_level,total_impact\n1,Data Governance,1,Is there a data owner?,25%,0.456\n", readFile(t, path))
	})

	t.Run("xlsx export", func(t *testing.T) {
		path := filepath.Join(dir, "priorities.xlsx")
		require.NoError(t, WritePriorityResults(samplePriorities(), testConfig(schema.XLSXOut, path), 0))
		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.Equal(t, []string{schema.PrioritiesSheet}, f.GetSheetList())
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "priorities.json")
		require.NoError(t, WritePriorityResults(samplePriorities(), testConfig(schema.JSONOut, path), 0))
		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(readFile(t, path)), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "25%", got[0]["maturity_level"])
		assert.Equal(t, float64(1), got[0]["priority"])
	})
}

func TestWriteIndicatorResults(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "indicators.csv")
	require.NoError(t, WriteIndicatorResults(sampleIndicators(), testConfig(schema.CSVOut, path), 0))
	assert.Equal(t,
		"indicator,dimension,total_utility,maturity_gap,total_impact,eligible\n"+
			"Data Governance,People & Culture,0.50,0.25,0.13,true\n"+
			"Automation,Engineering,,0.10,,false\n",
		readFile(t, path))

	path = filepath.Join(dir, "indicators.txt")
	require.NoError(t, WriteIndicatorResults(sampleIndicators(), testConfig(schema.TextOut, path), time.Second))
	out := readFile(t, path)
	assert.Contains(t, out, "Showing 2 indicators (plottable: 1, eligible: 1)")
	assert.Contains(t, out, "-")
}

func TestWriteGoalResults(t *testing.T) {
	dir := t.TempDir()
	goals := []schema.GoalColumn{{Name: "Efficiency", Index: 5}, {Name: "Resilience", Index: 7}}

	path := filepath.Join(dir, "goals.csv")
	require.NoError(t, WriteGoalResults(goals, goals[:1], testConfig(schema.CSVOut, path)))
	assert.Equal(t, "name,column_index,selected\nEfficiency,5,true\nResilience,7,false\n", readFile(t, path))

	path = filepath.Join(dir, "goals.json")
	require.NoError(t, WriteGoalResults(goals, nil, testConfig(schema.JSONOut, path)))
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(readFile(t, path)), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Efficiency", got[0]["name"])
	assert.Equal(t, false, got[0]["selected"])

	path = filepath.Join(dir, "goals.txt")
	require.NoError(t, WriteGoalResults(goals, goals, testConfig(schema.TextOut, path)))
	assert.Contains(t, readFile(t, path), "Selected 2 of 2 goal columns")

	path = filepath.Join(dir, "none.txt")
	require.NoError(t, WriteGoalResults(nil, nil, testConfig(schema.TextOut, path)))
	assert.Contains(t, readFile(t, path), "No goal columns found")
}

func TestWriteQuestionResults(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "questions.csv")
	require.NoError(t, WriteQuestionResults(sampleQuestions(), testConfig(schema.CSVOut, path)))
	lines := strings.Split(strings.TrimSpace(readFile(t, path)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1,Data Governance | 数据治理,People & Culture,25% - Readiness,Is there a data owner?", lines[1])

	path = filepath.Join(dir, "empty.txt")
	require.NoError(t, WriteQuestionResults(nil, testConfig(schema.TextOut, path)))
	assert.Equal(t, NoQuestionsMessage+"\n", readFile(t, path))
}

func TestOutWriter(t *testing.T) {
	dir := t.TempDir()
	ow := NewOutWriter()

	require.NoError(t, ow.WriteGaps(sampleQuestions(), testConfig(schema.JSONOut, filepath.Join(dir, "g.json")), 0))
	require.NoError(t, ow.WriteGoals(nil, nil, testConfig(schema.JSONOut, filepath.Join(dir, "goals.json"))))
	require.NoError(t, ow.WriteIndicators(sampleIndicators(), testConfig(schema.JSONOut, filepath.Join(dir, "i.json")), 0))
	require.NoError(t, ow.WritePriorities(samplePriorities(), testConfig(schema.JSONOut, filepath.Join(dir, "p.json")), 0))
	require.NoError(t, ow.WriteQuestions(sampleQuestions(), testConfig(schema.JSONOut, filepath.Join(dir, "q.json"))))
	assert.Equal(t, "[]\n", readFile(t, filepath.Join(dir, "goals.json")))
}

func TestGetMaxTableTextWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		fixed int
		want  int
	}{
		{name: "wide terminal capped", width: 300, fixed: 40, want: maxTextWidth},
		{name: "narrow terminal floored", width: 60, fixed: 40, want: minTextWidth},
		{name: "in between", width: 120, fixed: 40, want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getMaxTableTextWidth(&contract.Config{Width: tt.width}, tt.fixed))
		})
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, []string{"A", "B"}, [][]string{{"1", "2"}}))
	assert.Contains(t, buf.String(), "1")
	assert.Contains(t, buf.String(), "2")
}
