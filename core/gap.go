package core

import (
	"strings"

	"github.com/huangsam/maturity/core/algo"
	"github.com/huangsam/maturity/schema"
)

// GapOf returns target - current with nil scores treated as 0.
// An unknown score is therefore handled like a fully absent one.
func GapOf(current, target *int) int {
	var c, t int
	if current != nil {
		c = *current
	}
	if target != nil {
		t = *target
	}
	return t - c
}

// BucketForGap maps an integer gap to its action category.
// Values outside 0..3, including negative gaps, fall back to NoAction.
func BucketForGap(gap int) schema.ActionBucket {
	switch gap {
	case 1:
		return schema.Limited
	case 2:
		return schema.Significant
	case 3:
		return schema.Extensive
	default:
		return schema.NoAction
	}
}

// ComputeQuestionGaps scores every question, computes its gap and bucket and
// returns a new slice stable-sorted by indicator then numeric question number.
// Questions without a number are dropped.
func ComputeQuestionGaps(questions []schema.QuestionRecord) []schema.QuestionRecord {
	out := make([]schema.QuestionRecord, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Number) == "" {
			continue
		}
		q.Response = schema.ParseResponse(q.Current)
		q.Score = ResponseScore(q.Current)
		q.TargetScore = ResponseScore(q.Target)
		q.Gap = GapOf(q.Score, q.TargetScore)
		q.Bucket = BucketForGap(q.Gap)
		out = append(out, q)
	}
	algo.SortQuestions(out)
	return out
}
