package contract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzSplitList fuzzes SplitList with random comma-separated values.
func FuzzSplitList(f *testing.F) {
	for _, seed := range []string{"", "a,b", " , ,", "People & Culture,Engineering", ",,,x"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, part := range SplitList(s) {
			if part == "" || strings.Contains(part, ",") {
				t.Errorf("SplitList(%q) produced invalid part %q", s, part)
			}
			if part != strings.TrimSpace(part) {
				t.Errorf("SplitList(%q) produced untrimmed part %q", s, part)
			}
		}
	})
}

// FuzzTruncateText checks that truncated text never exceeds the requested width.
func FuzzTruncateText(f *testing.F) {
	f.Add("Establish a governance board", 10)
	f.Add("", 0)
	f.Add("数据治理委员会成立", 4)

	f.Fuzz(func(t *testing.T, s string, width int) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		got := TruncateText(s, width)
		if width > 3 && utf8.RuneCountInString(got) > width {
			t.Errorf("TruncateText(%q, %d) = %q exceeds width", s, width, got)
		}
	})
}
