package core

import (
	"github.com/huangsam/maturity/schema"
)

// Selection holds the user choices that drive one recomputation.
type Selection struct {
	Goals  []string // nil selects every candidate goal, empty selects none
	Filter QuestionFilter
	Limit  int // Maximum number of priorities, 0 for all
}

// ReportBuilder derives a Report from a workbook step by step.
type ReportBuilder struct {
	wb     *schema.Workbook
	sel    Selection
	report *schema.Report

	// Gap-scored questions before filtering; the priority table uses these.
	scored []schema.QuestionRecord
}

// NewReportBuilder is the starting point for building a report.
func NewReportBuilder(wb *schema.Workbook, sel Selection) *ReportBuilder {
	return &ReportBuilder{
		wb:     wb,
		sel:    sel,
		report: &schema.Report{Source: wb.Source},
	}
}

// ComputeGaps scores every question and applies the question filter.
func (b *ReportBuilder) ComputeGaps() *ReportBuilder {
	b.scored = ComputeQuestionGaps(b.wb.Questions)
	b.report.Questions = FilterQuestions(b.scored, b.sel.Filter)
	return b
}

// MaskCharts prepares the cells of the radial charts.
func (b *ReportBuilder) MaskCharts() *ReportBuilder {
	b.report.MaturityCells, b.report.GapCells = ChartQuestions(b.scored, b.sel.Filter)
	return b
}

// SelectGoals detects the goal columns and resolves the user selection.
func (b *ReportBuilder) SelectGoals() *ReportBuilder {
	b.report.Goals = SelectGoalColumns(b.wb.Overview)
	b.report.Selected = ResolveGoalSelection(b.report.Goals, b.sel.Goals)
	return b
}

// SummarizeIndicators aggregates utility, gap and impact per indicator.
func (b *ReportBuilder) SummarizeIndicators() *ReportBuilder {
	b.report.Indicators = SummarizeIndicators(b.wb.Overview, b.report.Selected)
	return b
}

// LayoutScatter places indicators on the scatter plane. The layout stays nil
// when nothing is plottable.
func (b *ReportBuilder) LayoutScatter() *ReportBuilder {
	layout, err := LayoutScatter(b.report.Indicators)
	if err == nil {
		b.report.Scatter = layout
	}
	return b
}

// RankPriorities builds the ranked measure table.
func (b *ReportBuilder) RankPriorities() *ReportBuilder {
	b.report.Priorities = RankPriorities(b.scored, b.report.Indicators, b.sel.Limit)
	return b
}

// Build finalizes the construction and returns the completed report.
func (b *ReportBuilder) Build() *schema.Report {
	return b.report
}

// BuildReport runs every derivation step for the workbook under the selection.
func BuildReport(wb *schema.Workbook, sel Selection) *schema.Report {
	return NewReportBuilder(wb, sel).
		ComputeGaps().
		MaskCharts().
		SelectGoals().
		SummarizeIndicators().
		LayoutScatter().
		RankPriorities().
		Build()
}
