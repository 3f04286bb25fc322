package core

import (
	"slices"
	"strings"

	"github.com/huangsam/maturity/schema"
)

// QuestionFilter narrows the question tables. Empty fields do not filter.
type QuestionFilter struct {
	Dimensions []string
	Indicators []string
	Responses  []schema.Response
	Buckets    []schema.ActionBucket
}

// IsZero reports whether the filter lets everything through.
func (f QuestionFilter) IsZero() bool {
	return len(f.Dimensions) == 0 && len(f.Indicators) == 0 && len(f.Responses) == 0 && len(f.Buckets) == 0
}

// FilterQuestions returns the questions matching every non-empty field of the filter.
func FilterQuestions(questions []schema.QuestionRecord, f QuestionFilter) []schema.QuestionRecord {
	dims := foldSet(f.Dimensions)
	inds := foldSet(f.Indicators)
	out := make([]schema.QuestionRecord, 0, len(questions))
	for _, q := range questions {
		if len(dims) > 0 && !contains(dims, q.Dimension) {
			continue
		}
		if len(inds) > 0 && !contains(inds, q.Indicator) {
			continue
		}
		if len(f.Responses) > 0 && !slices.Contains(f.Responses, q.Response) {
			continue
		}
		if len(f.Buckets) > 0 && !slices.Contains(f.Buckets, q.Bucket) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// MaskResponses keeps every question but blanks the responses that are not
// selected, so the maturity chart keeps its shape. An empty selection masks nothing.
func MaskResponses(questions []schema.QuestionRecord, selected []schema.Response) []schema.QuestionRecord {
	out := make([]schema.QuestionRecord, len(questions))
	copy(out, questions)
	if len(selected) == 0 {
		return out
	}
	for i := range out {
		if !slices.Contains(selected, out[i].Response) {
			out[i].Response = schema.Unanswered
			out[i].Score = nil
		}
	}
	return out
}

// MaskBuckets keeps every question but hides those whose bucket is not selected.
// An empty selection masks nothing.
func MaskBuckets(questions []schema.QuestionRecord, selected []schema.ActionBucket) []schema.QuestionRecord {
	out := make([]schema.QuestionRecord, len(questions))
	copy(out, questions)
	if len(selected) == 0 {
		return out
	}
	for i := range out {
		out[i].Hidden = !slices.Contains(selected, out[i].Bucket)
	}
	return out
}

// ChartQuestions returns the cells of the two radial charts. Dimension and
// indicator filters narrow the questions; response and bucket filters only
// mask cells so every ring keeps its shape.
func ChartQuestions(questions []schema.QuestionRecord, f QuestionFilter) (maturity, gaps []schema.QuestionRecord) {
	base := FilterQuestions(questions, QuestionFilter{Dimensions: f.Dimensions, Indicators: f.Indicators})
	return MaskResponses(base, f.Responses), MaskBuckets(base, f.Buckets)
}

// ParseResponses converts user supplied labels into responses, skipping unknown ones.
func ParseResponses(labels []string) []schema.Response {
	var out []schema.Response
	for _, l := range labels {
		if r := schema.ParseResponse(l); r != schema.Unanswered {
			out = append(out, r)
		}
	}
	return out
}

// ParseBuckets converts user supplied bucket names into buckets, skipping unknown ones.
func ParseBuckets(names []string) []schema.ActionBucket {
	var out []schema.ActionBucket
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		for _, b := range schema.AllBuckets {
			if key == string(b) {
				out = append(out, b)
			}
		}
	}
	return out
}

func foldSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[strings.ToLower(v)] = struct{}{}
		}
	}
	return set
}

func contains(set map[string]struct{}, v string) bool {
	_, ok := set[strings.ToLower(strings.TrimSpace(v))]
	return ok
}
