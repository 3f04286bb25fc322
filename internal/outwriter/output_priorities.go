package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/parquet"
	"github.com/huangsam/maturity/internal/workbook"
	"github.com/huangsam/maturity/schema"
)

var prioritiesHeader = []string{
	"priority",
	"indicator",
	"number",
	"measure",
	"maturity_level",
	"total_impact",
}

// WritePriorityResults outputs the ranked priorities, dispatching based on the output format configured.
// The xlsx rendition is the exported priorities sheet.
func WritePriorityResults(entries []schema.PriorityEntry, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichPriorities(entries))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRows(w, prioritiesHeader, priorityRows(entries, fmtFloat))
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertPriorities(entries))
		}, "Wrote Parquet")
	case schema.XLSXOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return workbook.WritePriorities(w, entries)
		}, "Wrote XLSX")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePriorityTable(w, entries, cfg, duration)
		}, "Wrote table")
	}
}

func priorityRows(entries []schema.PriorityEntry, fmtFloat func(float64) string) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Priority),
			e.Indicator,
			e.Number,
			e.Measure,
			e.Level.Percent(),
			fmtFloat(e.TotalImpact),
		})
	}
	return rows
}

func writePriorityTable(w io.Writer, entries []schema.PriorityEntry, cfg *contract.Config, duration time.Duration) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, NoPrioritiesMessage)
		return err
	}

	fmtFloat, _ := createFormatters(cfg.Precision)
	textWidth := getMaxTableTextWidth(cfg, 40)

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			strconv.Itoa(e.Priority),
			contract.TruncateText(e.Measure, textWidth),
			e.Level.Percent(),
			fmtFloat(e.TotalImpact),
		})
	}
	if err := renderTable(w, []string{"Priority", "Measure", "Maturity Level", "Total Impact"}, data); err != nil {
		return err
	}
	return writeFooter(w, fmt.Sprintf("Showing %d prioritized measures", len(entries)), cfg, duration)
}
