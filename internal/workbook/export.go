package workbook

import (
	"fmt"
	"io"

	"github.com/huangsam/maturity/schema"
	"github.com/xuri/excelize/v2"
)

// PrioritiesFileName is the download name of the priorities export.
const PrioritiesFileName = "priorities.xlsx"

// PrioritiesHeader lists the columns of the priorities export.
var PrioritiesHeader = []string{"Priority", "Measure", "Maturity Level", "Total Impact"}

var prioritiesWidths = map[string]float64{"A": 10, "B": 90, "C": 30, "D": 14}

// NewPrioritiesFile builds a workbook holding the ranked priorities on the
// "Priorities" sheet, with a bold header and widened columns.
func NewPrioritiesFile(entries []schema.PriorityEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := schema.PrioritiesSheet
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := fillPriorities(f, sheet, entries); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fillPriorities(f *excelize.File, sheet string, entries []schema.PriorityEntry) error {
	header := make([]any, len(PrioritiesHeader))
	for i, h := range PrioritiesHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for col, width := range prioritiesWidths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{e.Priority, e.Measure, e.Level.Percent(), e.TotalImpact}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write priority %d: %w", e.Priority, err)
		}
	}
	return nil
}

// WritePriorities streams the priorities export to w.
func WritePriorities(w io.Writer, entries []schema.PriorityEntry) error {
	f, err := NewPrioritiesFile(entries)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return f.Write(w)
}

// SavePriorities writes the priorities export to path.
func SavePriorities(path string, entries []schema.PriorityEntry) error {
	f, err := NewPrioritiesFile(entries)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
