package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// Response represents a categorical survey answer.
	Response string

	// ActionBucket represents the action category derived from a gap.
	ActionBucket string

	// Tab represents a dashboard view.
	Tab string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// All survey responses recognized. Unanswered covers blank and unknown labels.
const (
	NotImplemented Response = "Not implemented yet"
	Partially      Response = "Partially implemented"
	Broadly        Response = "Broadly implemented"
	Fully          Response = "Fully implemented"
	DontKnow       Response = "Don't know"
	NotRelevant    Response = "Not relevant"
	Unanswered     Response = ""
)

// All action buckets, ordered by severity.
const (
	NoAction    ActionBucket = "none"
	Limited     ActionBucket = "limited"
	Significant ActionBucket = "significant"
	Extensive   ActionBucket = "extensive"
)

// All dashboard tabs.
const (
	ResultsTab    Tab = "results" // default
	GapsTab       Tab = "gaps"
	PrioritiesTab Tab = "priorities"
	QuestionsTab  Tab = "questions"
)

// Default sheet names of the assessment workbook.
const (
	DefaultQuestionSheet = "Assessment + Target Level"
	DefaultOverviewSheet = "Overview"
	PrioritiesSheet      = "Priorities"
)

// SentinelScore is the score shared by "Don't know" and "Not relevant".
const SentinelScore = 0

// LevelsPerIndicator is the number of maturity levels each indicator is assessed on.
const LevelsPerIndicator = 4

// AllResponses lists the recognized responses in display order.
var AllResponses = []Response{NotImplemented, Partially, Broadly, Fully, DontKnow, NotRelevant}

// AllBuckets lists the action buckets in display order.
var AllBuckets = []ActionBucket{NoAction, Limited, Significant, Extensive}

// AllTabs lists the dashboard tabs in display order.
var AllTabs = []Tab{ResultsTab, GapsTab, PrioritiesTab, QuestionsTab}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// responseScores maps each recognized response to its ordinal score.
var responseScores = map[Response]int{
	NotImplemented: 1,
	Partially:      2,
	Broadly:        3,
	Fully:          4,
	DontKnow:       SentinelScore,
	NotRelevant:    SentinelScore,
}

// Score returns the ordinal score of the response, or false when the
// response carries no score.
func (r Response) Score() (int, bool) {
	s, ok := responseScores[r]
	return s, ok
}

// Label returns the bilingual display label of the response.
func (r Response) Label() string {
	switch r {
	case NotImplemented:
		return "Not implemented yet | 尚未实施"
	case Partially:
		return "Partially implemented | 部分实施"
	case Broadly:
		return "Broadly implemented | 广泛实施"
	case Fully:
		return "Fully implemented | 全面实施"
	case DontKnow:
		return "Don't know | 不知道"
	case NotRelevant:
		return "Not relevant | 不相关"
	default:
		return "Unanswered"
	}
}

// Label returns the bilingual display label of the bucket.
func (b ActionBucket) Label() string {
	switch b {
	case Limited:
		return "Limited action required | 仅需采取有限行动"
	case Significant:
		return "Significant action required | 需要采取重大行动"
	case Extensive:
		return "Extensive action required | 需要采取广泛行动"
	default:
		return "No action required | 无需采取任何行动"
	}
}

// Title returns the display title of the tab.
func (t Tab) Title() string {
	switch t {
	case GapsTab:
		return "Gap Analysis"
	case PrioritiesTab:
		return "Prioritization"
	case QuestionsTab:
		return "All Questions"
	default:
		return "Assessment Results"
	}
}
