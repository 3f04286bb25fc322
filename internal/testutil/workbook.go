// Package testutil builds assessment workbooks for tests of the packages
// that consume them.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var questionHeader = []any{
	"INDICATOR | 指标", "DIMENSION | 维度", "NUMBER | 编号", "ASSESSMENT QUESTION | 评估问题",
	"CURRENT IMPLEMENTATION LEVEL | 当前实施水平", "TARGET IMPLEMENTATION LEVEL | 目标实施层级",
}

// SampleQuestions holds eight questions over two indicators. Loaded, they get
// levels 1-4 twice in number order.
var SampleQuestions = [][]any{
	{"Data Governance", "People & Culture", "10", "Is there a data owner?", "Not implemented yet | 尚未实施 ", "Fully implemented | 全面实施"},
	{"Data Governance", "People & Culture", "1", "Is there a policy?", "Partially implemented | 部分实施", "Broadly implemented | 广泛实施"},
	{"Data Governance", "People & Culture", "2", "Is it published?", "Fully implemented | 全面实施", "Fully implemented | 全面实施"},
	{"Data Governance", "People & Culture", "3", "Is it reviewed?", "Don't know | 不知道", "Partially implemented | 部分实施"},
	{"Data Quality", "Engineering", "5", "Are checks automated?", "Not relevant | 不相关", "Not relevant | 不相关"},
	{"Data Quality", "Engineering", "4", "Is quality measured?", "Broadly implemented | 广泛实施", "Fully implemented | 全面实施"},
	{"Data Quality", "Engineering", "7", "Are issues tracked?", "", "Partially implemented | 部分实施"},
	{"Data Quality", "Engineering", "6", "Is there an SLA?", "Not implemented yet | 尚未实施 ", "Broadly implemented | 广泛实施"},
}

// The goal window holds Efficiency and Resilience; "Goal 2", the blank
// header and the empty Growth column are not goals.
var overviewHeader = []any{
	"No.", "INDICATOR | 指标", "DIMENSION | 维度", "Description", "Weight",
	"Efficiency", "Goal 2", "Resilience", "", "Growth",
	"TOTAL UTILITY | 总效用值", "MATURITY GAP | 成熟度差距", "TOTAL IMPACT | 总影响度",
}

var overviewRows = [][]any{
	{1, "Data Governance", "People & Culture", "", "", "20%", "", "10%", "", "", 0.3, "40%", 0.8},
	{2, "Data Quality", "Engineering", "", "", "", "", "5%", "", "", 0.05, "25%", 0.4},
}

// FormattedOverviewRows stores every overview number as a numeric cell
// whose display format rounds it. Shown formatted, both utilities read 50%,
// both gaps 13% and both impacts 0.8.
var FormattedOverviewRows = [][]any{
	{1, "Data Governance", "People & Culture", "", "", 0.301, "", 0.2, "", "", 0.501, 0.125, 0.806},
	{2, "Data Quality", "Engineering", "", "", "", "", 0.499, "", "", 0.499, 0.13, 0.814},
}

// SampleWorkbook returns the sample workbook as xlsx bytes.
func SampleWorkbook(tb testing.TB) []byte {
	tb.Helper()
	return buildWorkbook(tb, overviewRows, nil)
}

// FormattedWorkbook returns the sample questions with FormattedOverviewRows
// as the Overview sheet. Goal weights, utilities and gaps carry a "0%"
// format and impacts a "0.0" format.
func FormattedWorkbook(tb testing.TB) []byte {
	tb.Helper()
	return buildWorkbook(tb, FormattedOverviewRows, func(f *excelize.File, sheet string) {
		percent, err := f.NewStyle(&excelize.Style{NumFmt: 9})
		require.NoError(tb, err)
		oneDecimal := "0.0"
		decimal, err := f.NewStyle(&excelize.Style{CustomNumFmt: &oneDecimal})
		require.NoError(tb, err)

		last := len(FormattedOverviewRows) + 2
		require.NoError(tb, f.SetCellStyle(sheet, "H3", fmt.Sprintf("J%d", last), percent))
		require.NoError(tb, f.SetCellStyle(sheet, "M3", fmt.Sprintf("N%d", last), percent))
		require.NoError(tb, f.SetCellStyle(sheet, "O3", fmt.Sprintf("O%d", last), decimal))
	})
}

func buildWorkbook(tb testing.TB, overview [][]any, styleOverview func(f *excelize.File, sheet string)) []byte {
	tb.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := schema.DefaultQuestionSheet
	require.NoError(tb, f.SetSheetName(f.GetSheetName(0), sheet))
	require.NoError(tb, f.SetSheetRow(sheet, "C3", &questionHeader))
	for i, row := range SampleQuestions {
		cell, err := excelize.CoordinatesToCellName(3, i+4)
		require.NoError(tb, err)
		require.NoError(tb, f.SetSheetRow(sheet, cell, &row))
	}

	_, err := f.NewSheet(schema.DefaultOverviewSheet)
	require.NoError(tb, err)
	require.NoError(tb, f.SetSheetRow(schema.DefaultOverviewSheet, "C2", &overviewHeader))
	for i, row := range overview {
		cell, err := excelize.CoordinatesToCellName(3, i+3)
		require.NoError(tb, err)
		require.NoError(tb, f.SetSheetRow(schema.DefaultOverviewSheet, cell, &row))
	}
	if styleOverview != nil {
		styleOverview(f, schema.DefaultOverviewSheet)
	}

	var buf bytes.Buffer
	require.NoError(tb, f.Write(&buf))
	return buf.Bytes()
}

// WriteSampleWorkbook saves the sample workbook in a temporary directory and
// returns its path.
func WriteSampleWorkbook(tb testing.TB) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "assessment.xlsx")
	require.NoError(tb, os.WriteFile(path, SampleWorkbook(tb), 0o600))
	return path
}
