package core

import "github.com/huangsam/maturity/schema"

// ResponseScore maps a raw response label to its ordinal score.
// Unrecognized and missing labels yield nil.
func ResponseScore(label string) *int {
	score, ok := schema.ParseResponse(label).Score()
	if !ok {
		return nil
	}
	return &score
}
