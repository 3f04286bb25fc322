package schema

import "fmt"

// MaturityLevel is the ordinal 1-4 implementation depth of a question.
type MaturityLevel int

// All maturity levels.
const (
	Readiness    MaturityLevel = 1
	Initial      MaturityLevel = 2
	Intermediate MaturityLevel = 3
	Advanced     MaturityLevel = 4
)

// AllLevels lists the maturity levels in ascending order.
var AllLevels = []MaturityLevel{Readiness, Initial, Intermediate, Advanced}

// Valid reports whether the level is within 1..4.
func (l MaturityLevel) Valid() bool {
	return l >= Readiness && l <= Advanced
}

// Percent returns the short label used in priority tables, e.g. "25%".
func (l MaturityLevel) Percent() string {
	if !l.Valid() {
		return ""
	}
	return fmt.Sprintf("%d%%", int(l)*25)
}

// Label returns the full display label, e.g. "25% - Readiness".
func (l MaturityLevel) Label() string {
	switch l {
	case Readiness:
		return "25% - Readiness"
	case Initial:
		return "50% - Initial Maturity"
	case Intermediate:
		return "75% - Intermediate Maturity"
	case Advanced:
		return "100% - Advanced Maturity"
	default:
		return ""
	}
}

// Fraction returns the level as a fraction of full maturity.
func (l MaturityLevel) Fraction() float64 {
	if !l.Valid() {
		return 0
	}
	return float64(l) / float64(Advanced)
}

// LevelForPosition returns the level cyclically assigned to the i-th sorted row.
func LevelForPosition(i int) MaturityLevel {
	return MaturityLevel(i%LevelsPerIndicator + 1)
}
