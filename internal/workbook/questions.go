package workbook

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/maturity/schema"
)

// parseQuestions reads the question sheet. Rows are sorted naturally by
// number, with numberless rows last. Without a Level column the levels are
// assigned cyclically over the sorted rows.
func parseQuestions(rows [][]string) ([]schema.QuestionRecord, error) {
	hdr := findHeader(rows, colIndicator, colNumber)
	if hdr < 0 {
		return nil, fmt.Errorf("%w: no header row with %q and %q", ErrMissingColumn, colIndicator.name, colNumber.name)
	}
	cols, err := newHeaderIndex(rows[hdr]).resolve(colIndicator, colDimension, colNumber, colQuestion, colCurrent, colTarget, colLevel)
	if err != nil {
		return nil, err
	}

	type raw struct {
		record schema.QuestionRecord
		level  string
	}
	var records []raw
	for _, row := range rows[hdr+1:] {
		if blankRow(row) {
			continue
		}
		records = append(records, raw{
			record: schema.QuestionRecord{
				Indicator: cell(row, cols[colIndicator.name]),
				Dimension: cell(row, cols[colDimension.name]),
				Number:    cell(row, cols[colNumber.name]),
				Question:  cell(row, cols[colQuestion.name]),
				Current:   cell(row, cols[colCurrent.name]),
				Target:    cell(row, cols[colTarget.name]),
			},
			level: cell(row, cols[colLevel.name]),
		})
	}

	slices.SortStableFunc(records, func(a, b raw) int {
		an, bn := a.record.Number, b.record.Number
		switch {
		case an == "" && bn == "":
			return 0
		case an == "":
			return 1
		case bn == "":
			return -1
		}
		return schema.CompareNumbers(an, bn)
	})

	hasLevel := cols[colLevel.name] >= 0
	levels := make([]schema.MaturityLevel, len(records))
	var unreadable []string
	for i, r := range records {
		if hasLevel {
			if parsed, ok := ParseLevel(r.level); ok {
				levels[i] = parsed
				continue
			}
			unreadable = append(unreadable, r.record.Number)
		}
		levels[i] = schema.LevelForPosition(i)
	}

	// Cyclic levels only line up when every indicator contributes a full cycle.
	if (!hasLevel || len(unreadable) > 0) && len(records)%schema.LevelsPerIndicator != 0 {
		if hasLevel {
			return nil, fmt.Errorf("%w: unreadable level for question %s and %d questions, expected a multiple of %d",
				ErrLevelCycle, strings.Join(unreadable, ", "), len(records), schema.LevelsPerIndicator)
		}
		return nil, fmt.Errorf("%w: %d questions, expected a multiple of %d", ErrLevelCycle, len(records), schema.LevelsPerIndicator)
	}

	out := make([]schema.QuestionRecord, len(records))
	for i, r := range records {
		r.record.Level = levels[i]
		out[i] = r.record
	}
	return out, nil
}

// ParseLevel reads a level cell. It accepts the ordinal ("2"), the percent
// ("50%"), the raw fraction of a percent-formatted cell ("0.5") or the
// display label ("50% - Initial Maturity | 初步成熟").
func ParseLevel(s string) (schema.MaturityLevel, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		l := schema.MaturityLevel(n)
		return l, l.Valid()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		for _, l := range schema.AllLevels {
			if math.Abs(f-l.Fraction()) < 1e-9 {
				return l, true
			}
		}
		return 0, false
	}
	key := schema.EnglishPart(s)
	for _, l := range schema.AllLevels {
		pct := strings.ToLower(l.Percent())
		if key == pct || strings.HasPrefix(key, pct+" ") || key == strings.ToLower(l.Label()) {
			return l, true
		}
	}
	return 0, false
}
