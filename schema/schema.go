// Package schema has models, enums and labels for all parts of maturity.
package schema

// QuestionRecord is one assessment question with its derived scores.
type QuestionRecord struct {
	Indicator   string        `json:"indicator"`
	Dimension   string        `json:"dimension,omitempty"`
	Number      string        `json:"number"`
	Question    string        `json:"question"`
	Current     string        `json:"current"`          // Raw current-response label
	Target      string        `json:"target"`           // Raw target-response label
	Response    Response      `json:"response"`         // Normalized current response
	Level       MaturityLevel `json:"level"`            // 1..4
	Score       *int          `json:"score"`            // nil when the current label is not recognized
	TargetScore *int          `json:"target_score"`     // nil when the target label is not recognized
	Gap         int           `json:"gap"`              // TargetScore - Score, nil treated as 0
	Bucket      ActionBucket  `json:"bucket"`           // Action category of Gap
	Hidden      bool          `json:"hidden,omitempty"` // Masked out by a bucket filter
}

// OverviewRow is one indicator row of the Overview sheet.
// Cells is aligned with OverviewTable.Header; the named fields hold the raw
// values of the resolved columns.
type OverviewRow struct {
	Indicator    string
	Dimension    string
	Cells        []string
	TotalUtility string
	MaturityGap  string
	TotalImpact  string
}

// Cell returns the raw value at the given column index, or "" when the row is short.
func (r OverviewRow) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return r.Cells[idx]
}

// OverviewTable is the Overview sheet with its header preserved for goal detection.
type OverviewTable struct {
	Header []string
	Rows   []OverviewRow
}

// Workbook is the typed content of an assessment spreadsheet.
type Workbook struct {
	Source    string
	Questions []QuestionRecord
	Overview  OverviewTable
}

// Dimensions returns the distinct dimensions of the questions in first-seen order.
func (w *Workbook) Dimensions() []string {
	return distinct(w.Questions, func(q QuestionRecord) string { return q.Dimension })
}

// Indicators returns the distinct indicators of the questions in first-seen order.
func (w *Workbook) Indicators() []string {
	return distinct(w.Questions, func(q QuestionRecord) string { return q.Indicator })
}

func distinct(questions []QuestionRecord, key func(QuestionRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, q := range questions {
		k := key(q)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// GoalColumn is an Overview column holding per-indicator goal weights.
type GoalColumn struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// IndicatorSummary is the per-indicator aggregate used by the scatter plot and ranking.
type IndicatorSummary struct {
	Indicator    string   `json:"indicator"`
	Dimension    string   `json:"dimension,omitempty"`
	MaturityGap  *float64 `json:"maturity_gap"`
	TotalUtility *float64 `json:"total_utility"`
	TotalImpact  *float64 `json:"total_impact"`
	Eligible     bool     `json:"eligible"` // Contributes positively to a selected goal
}

// Plottable reports whether both scatter coordinates are present.
func (s IndicatorSummary) Plottable() bool {
	return s.TotalUtility != nil && s.MaturityGap != nil
}

// ScatterPoint is an indicator placed on the utility/gap plane.
type ScatterPoint struct {
	Indicator string  `json:"indicator"`
	Dimension string  `json:"dimension,omitempty"`
	X         float64 `json:"x"`        // True total utility
	Y         float64 `json:"y"`        // True maturity gap
	JitterX   float64 `json:"jitter_x"` // Displayed X
	JitterY   float64 `json:"jitter_y"` // Displayed Y
	Angle     float64 `json:"angle"`
	GroupSize int     `json:"group_size"`
	Impact    float64 `json:"impact"`
}

// ScatterLayout is the laid out scatter plot.
type ScatterLayout struct {
	Points  []ScatterPoint `json:"points"`
	MedianX float64        `json:"median_x"`
	MedianY float64        `json:"median_y"`
	XMin    float64        `json:"x_min"`
	XMax    float64        `json:"x_max"`
	YMin    float64        `json:"y_min"`
	YMax    float64        `json:"y_max"`
	Order   []int          `json:"order"`   // Indexes into Points by impact descending
	Legend  []string       `json:"legend"`  // Indicator of each point in Order
	Skipped []string       `json:"skipped"` // Indicators missing a coordinate
}

// PriorityEntry is one ranked measure.
type PriorityEntry struct {
	Priority    int           `json:"priority"`
	Indicator   string        `json:"indicator"`
	Number      string        `json:"number"`
	Measure     string        `json:"measure"`
	Level       MaturityLevel `json:"level"`
	TotalImpact float64       `json:"total_impact"`
}

// Report is the full derivation of one workbook under one selection.
type Report struct {
	Source     string             `json:"source"`
	Questions  []QuestionRecord   `json:"questions"`
	Goals      []GoalColumn       `json:"goals"`
	Selected   []GoalColumn       `json:"selected"`
	Indicators []IndicatorSummary `json:"indicators"`
	Scatter    *ScatterLayout     `json:"scatter,omitempty"` // nil when nothing is plottable
	Priorities []PriorityEntry    `json:"priorities"`

	// Chart inputs: dimension and indicator filtered, with unselected
	// responses blanked and unselected buckets hidden.
	MaturityCells []QuestionRecord `json:"-"`
	GapCells      []QuestionRecord `json:"-"`
}
