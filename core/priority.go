package core

import (
	"strings"

	"github.com/huangsam/maturity/core/algo"
	"github.com/huangsam/maturity/schema"
)

// RankPriorities builds the ranked measure table. Only questions with a
// positive gap whose indicator is goal-eligible and has a total impact above
// zero are kept. Questions are expected in ComputeQuestionGaps order, which
// decides ties. The first summary per indicator wins the join.
func RankPriorities(questions []schema.QuestionRecord, indicators []schema.IndicatorSummary, limit int) []schema.PriorityEntry {
	byIndicator := make(map[string]schema.IndicatorSummary, len(indicators))
	for _, ind := range indicators {
		if _, ok := byIndicator[ind.Indicator]; !ok {
			byIndicator[ind.Indicator] = ind
		}
	}

	var entries []schema.PriorityEntry
	for _, q := range questions {
		if q.Gap <= 0 {
			continue
		}
		ind, ok := byIndicator[q.Indicator]
		if !ok || !ind.Eligible || ind.TotalImpact == nil || *ind.TotalImpact <= 0 {
			continue
		}
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		entries = append(entries, schema.PriorityEntry{
			Indicator:   q.Indicator,
			Number:      q.Number,
			Measure:     q.Question,
			Level:       q.Level,
			TotalImpact: *ind.TotalImpact,
		})
	}
	return algo.RankByImpact(entries, limit)
}
