package schema

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingDigits = regexp.MustCompile(`(\d+)`)
	numberSegment = regexp.MustCompile(`\d+|\D+`)
)

// EnglishPart returns the normalized English half of a bilingual label such as
// "Partially implemented | 部分实施". Case is folded and whitespace trimmed.
func EnglishPart(label string) string {
	if i := strings.Index(label, "|"); i >= 0 {
		label = label[:i]
	}
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

// EnglishDisplay returns the English half of a bilingual label with its case kept.
func EnglishDisplay(label string) string {
	if i := strings.Index(label, "|"); i >= 0 {
		label = label[:i]
	}
	return strings.Join(strings.Fields(label), " ")
}

// ParseResponse normalizes a raw response label. Unknown and blank labels
// yield Unanswered.
func ParseResponse(label string) Response {
	key := EnglishPart(label)
	if key == "" {
		return Unanswered
	}
	for _, r := range AllResponses {
		if strings.ToLower(string(r)) == key {
			return r
		}
	}
	return Unanswered
}

// NumberKey extracts the first run of digits of a question number.
// It returns NaN when the number has no digits.
func NumberKey(number string) float64 {
	m := leadingDigits.FindString(number)
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// CompareNumbers orders question numbers naturally: digit runs compare
// numerically and everything else lexically, so "Q2" < "Q10".
func CompareNumbers(a, b string) int {
	as := numberSegment.FindAllString(a, -1)
	bs := numberSegment.FindAllString(b, -1)
	for i := 0; i < len(as) && i < len(bs); i++ {
		x, y := as[i], bs[i]
		xd, yd := isDigits(x), isDigits(y)
		switch {
		case xd && yd:
			xi, _ := strconv.Atoi(x)
			yi, _ := strconv.Atoi(y)
			if xi != yi {
				if xi < yi {
					return -1
				}
				return 1
			}
		case x != y:
			return strings.Compare(x, y)
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// WrapText breaks text into lines of at most width runes on word boundaries.
// Words longer than width are kept whole.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(w)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
