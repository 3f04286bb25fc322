package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/parquet"
	"github.com/huangsam/maturity/schema"
)

var goalsHeader = []string{"name", "column_index", "selected"}

// goalResult is the JSON shape of one candidate goal.
type goalResult struct {
	schema.GoalColumn
	Selected bool `json:"selected"`
}

// WriteGoalResults outputs the candidate goal columns, flagging the selected ones.
func WriteGoalResults(goals, selected []schema.GoalColumn, cfg *contract.Config) error {
	records := parquet.ConvertGoals(goals, selected)

	switch cfg.Output {
	case schema.JSONOut:
		output := make([]goalResult, len(goals))
		for i, g := range goals {
			output[i] = goalResult{GoalColumn: g, Selected: records[i].Selected}
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, output)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRows(w, goalsHeader, goalRows(records))
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, records)
		}, "Wrote Parquet")
	case schema.XLSXOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSXRows(w, goalsSheet, goalsHeader, goalRows(records))
		}, "Wrote XLSX")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGoalTable(w, records, cfg)
		}, "Wrote table")
	}
}

func goalRows(records []parquet.Goal) [][]string {
	rows := make([][]string, 0, len(records))
	for _, g := range records {
		rows = append(rows, []string{g.Name, strconv.Itoa(int(g.Index)), strconv.FormatBool(g.Selected)})
	}
	return rows
}

func writeGoalTable(w io.Writer, records []parquet.Goal, cfg *contract.Config) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No goal columns found in the Overview sheet.")
		return err
	}

	var data [][]string
	picked := 0
	for i, g := range records {
		mark := "no"
		if g.Selected {
			mark = "yes"
			picked++
		}
		data = append(data, []string{strconv.Itoa(i + 1), schema.EnglishDisplay(g.Name), strconv.Itoa(int(g.Index)), mark})
	}
	if err := renderTable(w, []string{"#", "Goal", "Column", "Selected"}, data); err != nil {
		return err
	}
	return writeFooter(w, fmt.Sprintf("Selected %d of %d goal columns", picked, len(records)), cfg, 0)
}
