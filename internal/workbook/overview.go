package workbook

import (
	"fmt"
	"strings"

	"github.com/huangsam/maturity/schema"
)

// parseOverview reads the Overview sheet. The table starts at the first
// non-blank header cell, so goal columns keep their position relative to it.
func parseOverview(rows [][]string) (schema.OverviewTable, error) {
	hdr := findHeader(rows, colIndicator, colImpact)
	if hdr < 0 {
		return schema.OverviewTable{}, fmt.Errorf("%w: no header row with %q and %q", ErrMissingColumn, colIndicator.name, colImpact.name)
	}

	start := 0
	for start < len(rows[hdr]) && strings.TrimSpace(rows[hdr][start]) == "" {
		start++
	}
	header := make([]string, len(rows[hdr])-start)
	for i, h := range rows[hdr][start:] {
		header[i] = strings.TrimSpace(h)
	}

	cols, err := newHeaderIndex(header).resolve(colIndicator, colDimension, colUtility, colGap, colImpact)
	if err != nil {
		return schema.OverviewTable{}, err
	}

	table := schema.OverviewTable{Header: header}
	for _, row := range rows[hdr+1:] {
		if blankRow(row) {
			continue
		}
		cells := make([]string, len(header))
		for i := range cells {
			cells[i] = cell(row, start+i)
		}
		table.Rows = append(table.Rows, schema.OverviewRow{
			Indicator:    cell(cells, cols[colIndicator.name]),
			Dimension:    cell(cells, cols[colDimension.name]),
			Cells:        cells,
			TotalUtility: cell(cells, cols[colUtility.name]),
			MaturityGap:  cell(cells, cols[colGap.name]),
			TotalImpact:  cell(cells, cols[colImpact.name]),
		})
	}
	return table, nil
}
