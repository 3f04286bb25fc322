package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/maturity/schema"
)

// ParseFraction parses a percentage string ("42%") or a plain number into a
// fraction. A "%" suffix divides by 100. Non-numeric input yields nil.
func ParseFraction(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	pct := strings.HasSuffix(s, "%")
	if pct {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	v := ParseNumber(s)
	if v == nil {
		return nil
	}
	if pct {
		*v /= 100
	}
	return v
}

// ParseNumber parses a plain number. Non-numeric input yields nil.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// TotalUtility sums the selected goal fractions of a row. A row where every
// selected value is missing yields nil. With no selected goals the
// precomputed Total Utility value is returned verbatim.
func TotalUtility(row schema.OverviewRow, selected []schema.GoalColumn) *float64 {
	if len(selected) == 0 {
		return ParseNumber(row.TotalUtility)
	}
	var sum float64
	var count int
	for _, g := range selected {
		if v := ParseFraction(row.Cell(g.Index)); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return &sum
}

// GoalEligible reports whether the row contributes positively to at least one
// selected goal. Every row is eligible when no goal is selected.
func GoalEligible(row schema.OverviewRow, selected []schema.GoalColumn) bool {
	if len(selected) == 0 {
		return true
	}
	for _, g := range selected {
		if v := ParseFraction(row.Cell(g.Index)); v != nil && *v > 0 {
			return true
		}
	}
	return false
}

// SummarizeIndicators derives one summary per Overview row with an indicator name.
func SummarizeIndicators(table schema.OverviewTable, selected []schema.GoalColumn) []schema.IndicatorSummary {
	out := make([]schema.IndicatorSummary, 0, len(table.Rows))
	for _, r := range table.Rows {
		if strings.TrimSpace(r.Indicator) == "" {
			continue
		}
		out = append(out, schema.IndicatorSummary{
			Indicator:    r.Indicator,
			Dimension:    r.Dimension,
			MaturityGap:  ParseFraction(r.MaturityGap),
			TotalUtility: TotalUtility(r, selected),
			TotalImpact:  ParseFraction(r.TotalImpact),
			Eligible:     GoalEligible(r, selected),
		})
	}
	return out
}
