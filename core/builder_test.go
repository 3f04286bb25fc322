package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workbookFixture() *schema.Workbook {
	return &schema.Workbook{
		Source: "assessment.xlsx",
		Questions: []schema.QuestionRecord{
			question("Gamma", "1", lblNot, lblFull, 1),
			question("Alpha", "2", lblBroad, lblFull, 3),
			question("Beta", "1", lblNot, lblFull, 1),
			question("Alpha", "1", lblNot, lblFull, 1),
		},
		Overview: overviewFixture(),
	}
}

func TestBuildReport_AllGoals(t *testing.T) {
	report := BuildReport(workbookFixture(), Selection{})

	assert.Equal(t, "assessment.xlsx", report.Source)
	assert.Equal(t, []string{"Efficiency", "Resilience"}, GoalNames(report.Selected))
	require.Len(t, report.Questions, 4)

	want := []schema.PriorityEntry{
		{Priority: 1, Indicator: "Alpha", Number: "1", Measure: "Question Alpha1", Level: schema.Readiness, TotalImpact: 0.8},
		{Priority: 2, Indicator: "Alpha", Number: "2", Measure: "Question Alpha2", Level: schema.MaturityLevel(3), TotalImpact: 0.8},
	}
	if diff := cmp.Diff(want, report.Priorities); diff != "" {
		t.Errorf("priorities mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, report.MaturityCells, 4)
	assert.Len(t, report.GapCells, 4)

	require.NotNil(t, report.Scatter)
	require.Len(t, report.Scatter.Points, 1)
	assert.Equal(t, "Alpha", report.Scatter.Points[0].Indicator)
	assert.Equal(t, []string{"Beta", "Gamma"}, report.Scatter.Skipped)
}

func TestBuildReport_NoGoalsUsesPrecomputedUtility(t *testing.T) {
	report := BuildReport(workbookFixture(), Selection{Goals: []string{}})

	assert.Empty(t, report.Selected)
	assert.Len(t, report.Goals, 2)

	var keys []string
	for _, p := range report.Priorities {
		keys = append(keys, p.Indicator+p.Number)
	}
	assert.Equal(t, []string{"Alpha1", "Alpha2", "Beta1"}, keys)

	require.NotNil(t, report.Scatter)
	assert.Len(t, report.Scatter.Points, 2)
}

func TestBuildReport_FilterLeavesPrioritiesIntact(t *testing.T) {
	sel := Selection{
		Goals:  []string{},
		Filter: QuestionFilter{Indicators: []string{"alpha"}},
		Limit:  2,
	}
	report := BuildReport(workbookFixture(), sel)

	for _, q := range report.Questions {
		assert.Equal(t, "Alpha", q.Indicator)
	}
	require.Len(t, report.Priorities, 2)
	assert.Equal(t, "Alpha", report.Priorities[1].Indicator)
}

func TestReportBuilder_PartialChain(t *testing.T) {
	report := NewReportBuilder(workbookFixture(), Selection{}).ComputeGaps().Build()

	assert.Len(t, report.Questions, 4)
	assert.Nil(t, report.Indicators)
	assert.Nil(t, report.Scatter)
	assert.Nil(t, report.Priorities)
	assert.Nil(t, report.MaturityCells)
}
