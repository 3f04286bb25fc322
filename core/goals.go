package core

import (
	"regexp"
	"strings"

	"github.com/huangsam/maturity/schema"
)

// Goal columns are looked up in a fixed window of the Overview header.
const (
	GoalWindowStart = 5
	GoalWindowSize  = 5
)

var goalHeader = regexp.MustCompile(`(?i)^\s*goal\b`)

// SelectGoalColumns returns the columns of the goal window that hold goal
// weights. Blank headers, "Goal..." placeholder headers and columns without
// any value are skipped.
func SelectGoalColumns(table schema.OverviewTable) []schema.GoalColumn {
	end := min(GoalWindowStart+GoalWindowSize, len(table.Header))
	var goals []schema.GoalColumn
	for idx := GoalWindowStart; idx < end; idx++ {
		name := strings.TrimSpace(table.Header[idx])
		if name == "" || goalHeader.MatchString(name) {
			continue
		}
		if columnBlank(table.Rows, idx) {
			continue
		}
		goals = append(goals, schema.GoalColumn{Name: name, Index: idx})
	}
	return goals
}

func columnBlank(rows []schema.OverviewRow, idx int) bool {
	for _, r := range rows {
		if strings.TrimSpace(r.Cell(idx)) != "" {
			return false
		}
	}
	return true
}

// ResolveGoalSelection picks the selected goal columns from the candidates.
// A nil selection means every candidate; an empty non-nil selection means none.
// Names are matched case-insensitively; unknown names are ignored.
func ResolveGoalSelection(candidates []schema.GoalColumn, names []string) []schema.GoalColumn {
	if names == nil {
		return candidates
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	selected := make([]schema.GoalColumn, 0, len(names))
	for _, c := range candidates {
		if _, ok := wanted[strings.ToLower(c.Name)]; ok {
			selected = append(selected, c)
		}
	}
	return selected
}

// GoalNames returns the names of the given goal columns.
func GoalNames(goals []schema.GoalColumn) []string {
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = g.Name
	}
	return names
}
