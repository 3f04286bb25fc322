// Package workbook reads assessment workbooks and writes the priorities export.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/huangsam/maturity/schema"
	"github.com/xuri/excelize/v2"
)

// Errors returned while loading a workbook.
var (
	ErrUnsupportedWorkbook = errors.New("unsupported workbook")
	ErrMissingColumn       = errors.New("missing column")
	ErrLevelCycle          = errors.New("question count does not fill whole level cycles")
)

// Options names the sheets to read.
type Options struct {
	QuestionSheet string
	OverviewSheet string
}

// DefaultOptions returns the sheet names of the standard assessment template.
func DefaultOptions() Options {
	return Options{
		QuestionSheet: schema.DefaultQuestionSheet,
		OverviewSheet: schema.DefaultOverviewSheet,
	}
}

// Load opens the workbook at path.
func Load(path string, opts Options) (*schema.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedWorkbook, path, err)
	}
	defer func() { _ = f.Close() }()
	return parse(f, path, opts)
}

// Read parses a workbook from r. The source name is kept for display only.
func Read(r io.Reader, source string, opts Options) (*schema.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedWorkbook, source, err)
	}
	defer func() { _ = f.Close() }()
	return parse(f, source, opts)
}

func parse(f *excelize.File, source string, opts Options) (*schema.Workbook, error) {
	if opts.QuestionSheet == "" {
		opts.QuestionSheet = schema.DefaultQuestionSheet
	}
	if opts.OverviewSheet == "" {
		opts.OverviewSheet = schema.DefaultOverviewSheet
	}

	questionRows, err := sheetRows(f, opts.QuestionSheet)
	if err != nil {
		return nil, err
	}
	questions, err := parseQuestions(questionRows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", opts.QuestionSheet, err)
	}

	overviewRows, err := sheetRows(f, opts.OverviewSheet)
	if err != nil {
		return nil, err
	}
	overview, err := parseOverview(overviewRows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", opts.OverviewSheet, err)
	}

	return &schema.Workbook{
		Source:    source,
		Questions: questions,
		Overview:  overview,
	}, nil
}

// sheetRows returns the rows of the named sheet, matched case-insensitively.
// Cells are read unformatted so a 0.125 stored under a "0%" format stays 0.125.
func sheetRows(f *excelize.File, name string) ([][]string, error) {
	sheets := f.GetSheetList()
	idx := slices.IndexFunc(sheets, func(s string) bool {
		return strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(name))
	})
	if idx < 0 {
		return nil, fmt.Errorf("%w: sheet %q not found", ErrUnsupportedWorkbook, name)
	}
	rows, err := f.GetRows(sheets[idx], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnsupportedWorkbook, name, err)
	}
	return rows, nil
}
