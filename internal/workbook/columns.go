package workbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/maturity/schema"
)

// column describes a header looked up by the English part of its label.
type column struct {
	name     string
	aliases  []string
	required bool
}

var (
	colIndicator = column{"Indicator", []string{"indicator"}, true}
	colDimension = column{"Dimension", []string{"dimension"}, false}
	colNumber    = column{"Number", []string{"number", "no.", "question number"}, true}
	colQuestion  = column{"Assessment Question", []string{"assessment question", "question"}, true}
	colCurrent   = column{"Current Implementation Level", []string{"current implementation level", "current level"}, true}
	colTarget    = column{"Target Implementation Level", []string{"target implementation level", "target level"}, true}
	colLevel     = column{"Level", []string{"level", "maturity level"}, false}

	colUtility = column{"Total Utility", []string{"total utility"}, false}
	colGap     = column{"Maturity Gap", []string{"maturity gap"}, true}
	colImpact  = column{"Total Impact", []string{"total impact"}, true}
)

// headerIndex maps normalized header labels to their positions.
type headerIndex map[string]int

func newHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		key := schema.EnglishPart(h)
		if _, ok := idx[key]; !ok && key != "" {
			idx[key] = i
		}
	}
	return idx
}

// lookup returns the position of the column, or -1 when absent.
func (h headerIndex) lookup(c column) int {
	for _, a := range c.aliases {
		if i, ok := h[a]; ok {
			return i
		}
	}
	return -1
}

// resolve looks up every column and fails on the first missing required one.
func (h headerIndex) resolve(cols ...column) (map[string]int, error) {
	out := make(map[string]int, len(cols))
	for _, c := range cols {
		i := h.lookup(c)
		if i < 0 && c.required {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c.name)
		}
		out[c.name] = i
	}
	return out, nil
}

// findHeader returns the index of the first row holding every marker column.
func findHeader(rows [][]string, markers ...column) int {
	return slices.IndexFunc(rows, func(row []string) bool {
		h := newHeaderIndex(row)
		for _, m := range markers {
			if h.lookup(m) < 0 {
				return false
			}
		}
		return true
	})
}

// cell returns the trimmed value at idx, or "" when idx is absent or out of range.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
