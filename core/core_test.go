package core

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/maturity/internal/chart"
	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/history"
	"github.com/huangsam/maturity/internal/testutil"
	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		WorkbookPath: testutil.WriteSampleWorkbook(t),
		Precision:    2,
		Output:       schema.CSVOut,
		OutDir:       t.TempDir(),
		ChartWidth:   4,
		ChartHeight:  4,
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func historyMocks() (*history.MockHistoryManager, *history.MockHistoryStore) {
	store := &history.MockHistoryStore{}
	mgr := &history.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)
	return mgr, store
}

func TestSelectionFromConfig(t *testing.T) {
	cfg := &contract.Config{
		Goals:       []string{},
		Dimensions:  []string{"Engineering"},
		Responses:   []string{"Fully implemented", "bogus"},
		Buckets:     []string{"Extensive"},
		ResultLimit: 3,
	}
	sel := SelectionFromConfig(cfg)
	assert.NotNil(t, sel.Goals)
	assert.Empty(t, sel.Goals)
	assert.Equal(t, []string{"Engineering"}, sel.Filter.Dimensions)
	assert.Equal(t, []schema.Response{schema.Fully}, sel.Filter.Responses)
	assert.Equal(t, []schema.ActionBucket{schema.Extensive}, sel.Filter.Buckets)
	assert.Equal(t, 3, sel.Limit)
}

func TestGetReport(t *testing.T) {
	ctx := WithSuppressHeader(WithCommand(context.Background(), "priorities"))
	cfg := sampleConfig(t)

	mgr, store := historyMocks()
	store.On("BeginRun", mock.Anything, mock.Anything, cfg.WorkbookPath, "priorities", mock.Anything).Return(int64(7), nil)
	store.On("RecordPriorities", mock.Anything, int64(7), mock.MatchedBy(func(e []schema.PriorityEntry) bool {
		return len(e) == 6
	})).Return(nil)
	store.On("EndRun", mock.Anything, int64(7), mock.Anything, 6).Return(nil)

	report, _, err := GetReport(ctx, cfg, mgr)
	require.NoError(t, err)
	store.AssertExpectations(t)

	assert.Equal(t, []string{"Efficiency", "Resilience"}, GoalNames(report.Goals))
	assert.Equal(t, GoalNames(report.Goals), GoalNames(report.Selected))
	require.Len(t, report.Indicators, 2)
	require.NotNil(t, report.Scatter)

	var numbers []string
	for _, p := range report.Priorities {
		numbers = append(numbers, p.Number)
	}
	assert.Equal(t, []string{"1", "3", "10", "4", "6", "7"}, numbers)
	assert.Equal(t, "Data Governance", report.Priorities[0].Indicator)
	assert.InDelta(t, 0.8, report.Priorities[0].TotalImpact, 1e-9)
}

func TestGetReport_NoHistory(t *testing.T) {
	cfg := sampleConfig(t)
	ctx := WithSuppressHeader(context.Background())

	report, _, err := GetReport(ctx, cfg, nil)
	require.NoError(t, err)
	assert.Len(t, report.Questions, 8)

	mgr := &history.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(nil)
	_, _, err = GetReport(ctx, cfg, mgr)
	assert.NoError(t, err)
	mgr.AssertExpectations(t)
}

func TestGetReport_FormattedNumbers(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.WorkbookPath = filepath.Join(t.TempDir(), "formatted.xlsx")
	require.NoError(t, os.WriteFile(cfg.WorkbookPath, testutil.FormattedWorkbook(t), 0o600))

	report, _, err := GetReport(WithSuppressHeader(context.Background()), cfg, nil)
	require.NoError(t, err)

	require.Len(t, report.Indicators, 2)
	gov, quality := report.Indicators[0], report.Indicators[1]
	require.NotNil(t, gov.MaturityGap)
	require.NotNil(t, gov.TotalImpact)
	require.NotNil(t, gov.TotalUtility)
	assert.InDelta(t, 0.125, *gov.MaturityGap, 1e-9)
	assert.InDelta(t, 0.806, *gov.TotalImpact, 1e-9)
	assert.InDelta(t, 0.501, *gov.TotalUtility, 1e-9)
	require.NotNil(t, quality.TotalImpact)
	assert.InDelta(t, 0.814, *quality.TotalImpact, 1e-9)

	require.NotNil(t, report.Scatter)
	require.Len(t, report.Scatter.Points, 2)
	for _, p := range report.Scatter.Points {
		assert.Equal(t, 1, p.GroupSize, p.Indicator)
	}

	require.NotEmpty(t, report.Priorities)
	assert.Equal(t, "Data Quality", report.Priorities[0].Indicator)
	assert.InDelta(t, 0.814, report.Priorities[0].TotalImpact, 1e-9)
}

func TestGetReport_HistoryFailureIsNotFatal(t *testing.T) {
	cfg := sampleConfig(t)
	mgr, store := historyMocks()
	store.On("BeginRun", mock.Anything, mock.Anything, mock.Anything, "report", mock.Anything).Return(int64(0), errors.New("db down"))

	report, _, err := GetReport(WithSuppressHeader(context.Background()), cfg, mgr)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Priorities)
	store.AssertNotCalled(t, "RecordPriorities", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetReport_Errors(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	_, _, err := GetReport(ctx, &contract.Config{}, nil)
	assert.ErrorIs(t, err, ErrNoWorkbook)

	_, _, err = GetReport(ctx, &contract.Config{WorkbookPath: filepath.Join(t.TempDir(), "missing.xlsx")}, nil)
	assert.Error(t, err)
}

func TestExecutePriorities(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.OutputFile = filepath.Join(t.TempDir(), "priorities.csv")
	cfg.ResultLimit = 2

	require.NoError(t, ExecutePriorities(WithSuppressHeader(context.Background()), cfg, nil))

	records := readCSV(t, cfg.OutputFile)
	assert.Equal(t, [][]string{
		{"priority", "indicator", "number", "measure", "maturity_level", "total_impact"},
		{"1", "Data Governance", "1", "Is there a policy?", "25%", "0.80"},
		{"2", "Data Governance", "3", "Is it reviewed?", "75%", "0.80"},
	}, records)
}

func TestExecuteQuestions(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.OutputFile = filepath.Join(t.TempDir(), "questions.csv")
	cfg.Dimensions = []string{"engineering"}

	require.NoError(t, ExecuteQuestions(WithSuppressHeader(context.Background()), cfg, nil))

	records := readCSV(t, cfg.OutputFile)
	require.Len(t, records, 5)
	var numbers []string
	for _, r := range records[1:] {
		numbers = append(numbers, r[0])
		assert.Equal(t, "Engineering", r[2])
	}
	assert.Equal(t, []string{"4", "5", "6", "7"}, numbers)
}

func TestExecuteGapsAndIndicators(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := sampleConfig(t)

	cfg.OutputFile = filepath.Join(t.TempDir(), "gaps.csv")
	cfg.Buckets = []string{"extensive"}
	require.NoError(t, ExecuteGaps(ctx, cfg, nil))
	gaps := readCSV(t, cfg.OutputFile)
	require.Len(t, gaps, 2)
	assert.Equal(t, "10", gaps[1][2])

	cfg.OutputFile = filepath.Join(t.TempDir(), "indicators.csv")
	require.NoError(t, ExecuteIndicators(ctx, cfg, nil))
	assert.Len(t, readCSV(t, cfg.OutputFile), 3)

	cfg.OutputFile = filepath.Join(t.TempDir(), "goals.csv")
	require.NoError(t, ExecuteGoals(ctx, cfg, nil))
	assert.Len(t, readCSV(t, cfg.OutputFile), 3)
}

func TestExecuteCharts(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.OutDir = filepath.Join(t.TempDir(), "charts")

	require.NoError(t, ExecuteCharts(WithSuppressHeader(context.Background()), cfg, nil))

	for _, kind := range chart.AllKinds {
		data, err := os.ReadFile(filepath.Join(cfg.OutDir, kind.FileName()))
		require.NoError(t, err, kind)
		assert.Equal(t, "\x89PNG", string(data[:4]), kind)
	}
}

func TestSortByNumber(t *testing.T) {
	questions := []schema.QuestionRecord{
		{Indicator: "B", Number: "10"},
		{Indicator: "A", Number: "2"},
		{Indicator: "B", Number: "2"},
		{Indicator: "A", Number: "x"},
	}
	sorted := SortByNumber(questions)

	var got []string
	for _, q := range sorted {
		got = append(got, q.Indicator+q.Number)
	}
	assert.Equal(t, []string{"A2", "B2", "B10", "Ax"}, got)
	assert.Equal(t, "B", questions[0].Indicator, "input is left untouched")
}
