package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/parquet"
	"github.com/huangsam/maturity/schema"
)

var questionsHeader = []string{"number", "indicator", "dimension", "maturity_level", "question"}

// WriteQuestionResults outputs the question list, dispatching based on the output format configured.
func WriteQuestionResults(questions []schema.QuestionRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichQuestions(questions))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRows(w, questionsHeader, questionRows(questions))
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertQuestions(questions))
		}, "Wrote Parquet")
	case schema.XLSXOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSXRows(w, questionsSheet, questionsHeader, questionRows(questions))
		}, "Wrote XLSX")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQuestionTable(w, questions, cfg)
		}, "Wrote table")
	}
}

func questionRows(questions []schema.QuestionRecord) [][]string {
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, []string{q.Number, q.Indicator, q.Dimension, q.Level.Label(), q.Question})
	}
	return rows
}

func writeQuestionTable(w io.Writer, questions []schema.QuestionRecord, cfg *contract.Config) error {
	if len(questions) == 0 {
		_, err := fmt.Fprintln(w, NoQuestionsMessage)
		return err
	}

	textWidth := getMaxTableTextWidth(cfg, 60)
	var data [][]string
	for _, q := range questions {
		data = append(data, []string{
			q.Number,
			contract.TruncateText(schema.EnglishDisplay(q.Indicator), 24),
			q.Level.Percent(),
			contract.TruncateText(q.Question, textWidth),
		})
	}
	if err := renderTable(w, []string{"No.", "Indicator", "Level", "Question"}, data); err != nil {
		return err
	}
	return writeFooter(w, fmt.Sprintf("Showing %d questions", len(questions)), cfg, 0)
}
