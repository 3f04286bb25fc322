package schema

import (
	"fmt"
	"strconv"
)

// EnrichedQuestion adds presentation data to a QuestionRecord.
type EnrichedQuestion struct {
	LevelLabel  string `json:"level_label"`
	BucketLabel string `json:"bucket_label"`
	QuestionRecord
}

// EnrichedPriority adds presentation data to a PriorityEntry.
type EnrichedPriority struct {
	MaturityLevel string `json:"maturity_level"`
	PriorityEntry
}

// EnrichQuestions adds level and bucket labels to a list of questions.
func EnrichQuestions(questions []QuestionRecord) []EnrichedQuestion {
	output := make([]EnrichedQuestion, len(questions))
	for i, q := range questions {
		output[i] = EnrichedQuestion{
			LevelLabel:     q.Level.Label(),
			BucketLabel:    q.Bucket.Label(),
			QuestionRecord: q,
		}
	}
	return output
}

// EnrichPriorities adds the maturity level label to a list of priorities.
func EnrichPriorities(entries []PriorityEntry) []EnrichedPriority {
	output := make([]EnrichedPriority, len(entries))
	for i, e := range entries {
		output[i] = EnrichedPriority{
			MaturityLevel: e.Level.Percent(),
			PriorityEntry: e,
		}
	}
	return output
}

// FormatOptional renders a nullable number with the given precision, or "-" when nil.
func FormatOptional(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', precision, 64)
}

// FormatScore renders a nullable score, or "-" when nil.
func FormatScore(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
