package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/parquet"
	"github.com/huangsam/maturity/schema"
)

var indicatorsHeader = []string{
	"indicator",
	"dimension",
	"total_utility",
	"maturity_gap",
	"total_impact",
	"eligible",
}

// WriteIndicatorResults outputs the indicator summaries, dispatching based on the output format configured.
func WriteIndicatorResults(indicators []schema.IndicatorSummary, cfg *contract.Config, duration time.Duration) error {
	_, fmtOptional := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, indicators)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRows(w, indicatorsHeader, indicatorRows(indicators, fmtOptional))
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertIndicators(indicators))
		}, "Wrote Parquet")
	case schema.XLSXOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSXRows(w, indicatorsSheet, indicatorsHeader, indicatorRows(indicators, fmtOptional))
		}, "Wrote XLSX")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIndicatorTable(w, indicators, cfg, duration)
		}, "Wrote table")
	}
}

func indicatorRows(indicators []schema.IndicatorSummary, fmtOptional func(*float64) string) [][]string {
	rows := make([][]string, 0, len(indicators))
	for _, ind := range indicators {
		rows = append(rows, []string{
			ind.Indicator,
			ind.Dimension,
			fmtOptional(ind.TotalUtility),
			fmtOptional(ind.MaturityGap),
			fmtOptional(ind.TotalImpact),
			strconv.FormatBool(ind.Eligible),
		})
	}
	return rows
}

func writeIndicatorTable(w io.Writer, indicators []schema.IndicatorSummary, cfg *contract.Config, duration time.Duration) error {
	headers := []string{"Indicator", "Dimension", "Utility", "Gap", "Impact", "Eligible"}

	var data [][]string
	plottable, eligible := 0, 0
	for _, ind := range indicators {
		if ind.Plottable() {
			plottable++
		}
		mark := "no"
		if ind.Eligible {
			mark = "yes"
			eligible++
		}
		data = append(data, []string{
			contract.TruncateText(schema.EnglishDisplay(ind.Indicator), 32),
			contract.TruncateText(schema.EnglishDisplay(ind.Dimension), 28),
			schema.FormatOptional(ind.TotalUtility, cfg.Precision),
			schema.FormatOptional(ind.MaturityGap, cfg.Precision),
			schema.FormatOptional(ind.TotalImpact, cfg.Precision),
			mark,
		})
	}

	if err := renderTable(w, headers, data); err != nil {
		return err
	}
	summary := fmt.Sprintf("Showing %d indicators (plottable: %d, eligible: %d)", len(indicators), plottable, eligible)
	return writeFooter(w, summary, cfg, duration)
}
