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

var gapsHeader = []string{
	"indicator",
	"dimension",
	"number",
	"question",
	"level",
	"current",
	"target",
	"score",
	"target_score",
	"gap",
	"bucket",
}

// WriteGapResults outputs the question gaps, dispatching based on the output format configured.
func WriteGapResults(questions []schema.QuestionRecord, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichQuestions(questions))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRows(w, gapsHeader, gapRows(questions))
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertQuestions(questions))
		}, "Wrote Parquet")
	case schema.XLSXOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSXRows(w, gapsSheet, gapsHeader, gapRows(questions))
		}, "Wrote XLSX")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGapTable(w, questions, cfg, duration)
		}, "Wrote table")
	}
}

// gapRows renders the plain rows shared by CSV and XLSX.
func gapRows(questions []schema.QuestionRecord) [][]string {
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, []string{
			q.Indicator,
			q.Dimension,
			q.Number,
			q.Question,
			q.Level.Percent(),
			q.Current,
			q.Target,
			formatScoreCell(q.Score),
			formatScoreCell(q.TargetScore),
			strconv.Itoa(q.Gap),
			contract.GetPlainBucketLabel(q.Bucket),
		})
	}
	return rows
}

func formatScoreCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// writeGapTable generates and writes the human-readable table.
func writeGapTable(w io.Writer, questions []schema.QuestionRecord, cfg *contract.Config, duration time.Duration) error {
	headers := []string{"Indicator", "No.", "Question", "Current", "Target", "Gap", "Action"}
	textWidth := getMaxTableTextWidth(cfg, 90)

	var data [][]string
	counts := make(map[schema.ActionBucket]int)
	for _, q := range questions {
		counts[q.Bucket]++
		bucket := contract.GetPlainBucketLabel(q.Bucket)
		if cfg.UseColors {
			bucket = contract.GetColorBucketLabel(q.Bucket)
		}
		data = append(data, []string{
			contract.TruncateText(schema.EnglishDisplay(q.Indicator), 24),
			q.Number,
			contract.TruncateText(q.Question, textWidth),
			schema.FormatScore(q.Score),
			schema.FormatScore(q.TargetScore),
			strconv.Itoa(q.Gap),
			bucket,
		})
	}

	if err := renderTable(w, headers, data); err != nil {
		return err
	}
	summary := fmt.Sprintf("Showing %d questions (extensive: %d, significant: %d, limited: %d)",
		len(questions), counts[schema.Extensive], counts[schema.Significant], counts[schema.Limited])
	return writeFooter(w, summary, cfg, duration)
}
