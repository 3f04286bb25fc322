package algo

import (
	"math"
	"sort"

	"github.com/huangsam/maturity/schema"
)

// SortQuestions stable-sorts questions by indicator, then by the numeric part
// of the question number. Numbers without digits sort last within an indicator.
func SortQuestions(questions []schema.QuestionRecord) {
	sort.SliceStable(questions, func(i, j int) bool {
		a, b := questions[i], questions[j]
		if a.Indicator != b.Indicator {
			return a.Indicator < b.Indicator
		}
		return numberLess(schema.NumberKey(a.Number), schema.NumberKey(b.Number))
	})
}

// SortByNumber stable-sorts questions by natural question number order,
// then by indicator.
func SortByNumber(questions []schema.QuestionRecord) {
	sort.SliceStable(questions, func(i, j int) bool {
		a, b := questions[i], questions[j]
		if c := schema.CompareNumbers(a.Number, b.Number); c != 0 {
			return c < 0
		}
		return a.Indicator < b.Indicator
	})
}

func numberLess(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	default:
		return a < b
	}
}

// RankByImpact stable-sorts entries by total impact in descending order,
// assigns 1-based priorities and returns the top 'limit' entries. A limit of
// zero or less keeps every entry.
func RankByImpact(entries []schema.PriorityEntry, limit int) []schema.PriorityEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalImpact > entries[j].TotalImpact
	})
	for i := range entries {
		entries[i].Priority = i + 1
	}
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
