package server

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/huangsam/maturity/core"
	"github.com/huangsam/maturity/internal/chart"
	"github.com/huangsam/maturity/schema"
)

// Query parameters of the workbook page. goalsel marks a submitted goal
// form, so that unchecking every goal selects none instead of all.
const (
	tabParam       = "tab"
	goalParam      = "goal"
	goalSelParam   = "goalsel"
	dimensionParam = "dimension"
	indicatorParam = "indicator"
	responseParam  = "response"
	bucketParam    = "bucket"
)

const (
	noQuestionsMessage = "No questions match the current filters."
	noScatterMessage   = "No indicators have both utility and gap values"
)

// selectionFromQuery reads the goal and filter choices of one request.
func selectionFromQuery(q url.Values) core.Selection {
	var goals []string
	switch {
	case len(q[goalParam]) > 0:
		goals = q[goalParam]
	case q.Has(goalSelParam):
		goals = []string{}
	}
	return core.Selection{
		Goals: goals,
		Filter: core.QuestionFilter{
			Dimensions: q[dimensionParam],
			Indicators: q[indicatorParam],
			Responses:  core.ParseResponses(q[responseParam]),
			Buckets:    core.ParseBuckets(q[bucketParam]),
		},
	}
}

type indexPage struct {
	Title     string
	Workbooks []*Entry
	Message   string
}

type option struct {
	Value   string
	Label   string
	Checked bool
}

type tabLink struct {
	Title  string
	URL    string
	Active bool
}

type questionRow struct {
	Number    string
	Indicator string
	Dimension string
	Question  string
	Current   string
	Target    string
	Level     string
	Gap       int
	Bucket    string
}

type priorityRow struct {
	Priority int
	Measure  string
	Level    string
	Impact   string
}

type workbookPage struct {
	Title string
	Entry *Entry
	Tab   schema.Tab
	Tabs  []tabLink

	Goals      []option
	Dimensions []option
	Indicators []option
	Responses  []option
	Buckets    []option

	ChartURL   string
	ExportURL  string
	Message    string
	Questions  []questionRow
	Priorities []priorityRow
}

func newWorkbookPage(entry *Entry, report *schema.Report, q url.Values) workbookPage {
	tab := tabOrDefault(q.Get(tabParam))
	base := "/w/" + entry.ID
	filters := withoutTab(q)

	page := workbookPage{
		Title:      PageTitle,
		Entry:      entry,
		Tab:        tab,
		Dimensions: stringOptions(entry.Workbook.Dimensions(), q[dimensionParam]),
		Indicators: stringOptions(entry.Workbook.Indicators(), q[indicatorParam]),
		Responses:  responseOptions(q[responseParam]),
		Buckets:    bucketOptions(q[bucketParam]),
		Goals:      goalOptions(report),
	}
	for _, t := range schema.AllTabs {
		link := withoutTab(q)
		link.Set(tabParam, string(t))
		page.Tabs = append(page.Tabs, tabLink{Title: t.Title(), URL: base + "?" + link.Encode(), Active: t == tab})
	}

	switch tab {
	case schema.GapsTab:
		page.ChartURL = chartURL(base, chart.GapsKind, filters)
		if len(report.GapCells) == 0 {
			page.Message = noQuestionsMessage
		}
	case schema.PrioritiesTab:
		page.ExportURL = base + "/priorities.xlsx" + encodeQuery(filters)
		if report.Scatter == nil {
			page.Message = noScatterMessage
		} else {
			page.ChartURL = chartURL(base, chart.ScatterKind, filters)
		}
		for _, p := range report.Priorities {
			page.Priorities = append(page.Priorities, priorityRow{
				Priority: p.Priority,
				Measure:  p.Measure,
				Level:    p.Level.Percent(),
				Impact:   strconv.FormatFloat(p.TotalImpact, 'f', 2, 64),
			})
		}
	case schema.QuestionsTab:
		for _, rec := range core.SortByNumber(report.Questions) {
			page.Questions = append(page.Questions, questionRow{
				Number:    rec.Number,
				Indicator: rec.Indicator,
				Dimension: rec.Dimension,
				Question:  rec.Question,
				Current:   rec.Response.Label(),
				Target:    schema.ParseResponse(rec.Target).Label(),
				Level:     rec.Level.Label(),
				Gap:       rec.Gap,
				Bucket:    rec.Bucket.Label(),
			})
		}
		if len(page.Questions) == 0 {
			page.Message = noQuestionsMessage
		}
	default:
		page.ChartURL = chartURL(base, chart.MaturityKind, filters)
		if len(report.MaturityCells) == 0 {
			page.Message = noQuestionsMessage
		}
	}
	if page.Message == noQuestionsMessage {
		page.ChartURL = ""
	}
	return page
}

func withoutTab(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		if k != tabParam {
			out[k] = slices.Clone(v)
		}
	}
	return out
}

func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func chartURL(base string, kind chart.Kind, q url.Values) string {
	return base + "/chart/" + string(kind) + ".png" + encodeQuery(q)
}

func stringOptions(values, checked []string) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		out = append(out, option{Value: v, Label: v, Checked: slices.Contains(checked, v)})
	}
	return out
}

func responseOptions(checked []string) []option {
	selected := core.ParseResponses(checked)
	out := make([]option, 0, len(schema.AllResponses))
	for _, r := range schema.AllResponses {
		out = append(out, option{Value: string(r), Label: r.Label(), Checked: slices.Contains(selected, r)})
	}
	return out
}

func bucketOptions(checked []string) []option {
	selected := core.ParseBuckets(checked)
	out := make([]option, 0, len(schema.AllBuckets))
	for _, b := range schema.AllBuckets {
		out = append(out, option{Value: string(b), Label: b.Label(), Checked: slices.Contains(selected, b)})
	}
	return out
}

// goalOptions lists every candidate goal, checked when selected.
func goalOptions(report *schema.Report) []option {
	selected := core.GoalNames(report.Selected)
	out := make([]option, 0, len(report.Goals))
	for _, g := range report.Goals {
		out = append(out, option{Value: g.Name, Label: g.Name, Checked: slices.Contains(selected, g.Name)})
	}
	return out
}
