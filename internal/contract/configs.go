package contract

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/maturity/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // 0 keeps every priority
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultAddr        = "127.0.0.1:8050"
	DefaultAppEnv      = "development"
	DefaultOutDir      = "."
	DefaultChartWidth  = 12 // inches
	DefaultChartHeight = 12 // inches
	MaxChartSize       = 48 // inches
)

// ValidAppEnvs lists the environments the dashboard logger understands.
var ValidAppEnvs = []string{"development", "production"}

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for every command.
// This struct remains the "final, validated" config.
type Config struct {
	WorkbookPath  string
	QuestionSheet string
	OverviewSheet string

	// Goals is nil to select every detected goal and empty to select none.
	Goals      []string
	Dimensions []string
	Indicators []string
	Responses  []string
	Buckets    []string

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Addr   string
	Watch  bool
	AppEnv string

	OutDir      string
	ChartWidth  int
	ChartHeight int

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	WorkbookPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	QuestionSheet    string `mapstructure:"question-sheet"`
	OverviewSheet    string `mapstructure:"overview-sheet"`
	OutputFile       string `mapstructure:"output-file"`
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	Goals            string `mapstructure:"goals"`
	NoGoals          bool   `mapstructure:"no-goals"`
	Dimension        string `mapstructure:"dimension"`
	Indicator        string `mapstructure:"indicator"`
	Response         string `mapstructure:"response"`
	Bucket           string `mapstructure:"bucket"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from serveCmd.Flags() ---
	Addr   string `mapstructure:"addr"`
	Watch  bool   `mapstructure:"watch"`
	AppEnv string `mapstructure:"app-env"`

	// --- Fields from chartsCmd.Flags() ---
	OutDir      string `mapstructure:"out-dir"`
	ChartWidth  int    `mapstructure:"chart-width"`
	ChartHeight int    `mapstructure:"chart-height"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Goals = slices.Clone(c.Goals)
	clone.Dimensions = slices.Clone(c.Dimensions)
	clone.Indicators = slices.Clone(c.Indicators)
	clone.Responses = slices.Clone(c.Responses)
	clone.Buckets = slices.Clone(c.Buckets)
	return &clone
}

// CloneWithWorkbook creates a copy of the Config pointing at another workbook.
func (c *Config) CloneWithWorkbook(path string) *Config {
	clone := c.Clone()
	clone.WorkbookPath = path
	return clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processServeAndCharts(cfg, input); err != nil {
		return err
	}
	if err := resolveWorkbookPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := strings.ToLower(input.HistoryBackend)
	if backend == "" {
		backend = string(schema.NoneBackend)
	}
	cfg.HistoryBackend = schema.DatabaseBackend(backend)
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.QuestionSheet = strings.TrimSpace(input.QuestionSheet)
	if cfg.QuestionSheet == "" {
		cfg.QuestionSheet = schema.DefaultQuestionSheet
	}
	cfg.OverviewSheet = strings.TrimSpace(input.OverviewSheet)
	if cfg.OverviewSheet == "" {
		cfg.OverviewSheet = schema.DefaultOverviewSheet
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", cfg.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.XLSXOut) && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	// --- 3. Backend Validation ---
	return validateBackendConfig(cfg, input)
}

// processSelection handles the goal selection and the question filters.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	goals := SplitList(input.Goals)
	switch {
	case input.NoGoals && len(goals) > 0:
		return fmt.Errorf("--goals and --no-goals cannot be combined")
	case input.NoGoals:
		cfg.Goals = []string{}
	default:
		cfg.Goals = goals // nil when unset
	}

	cfg.Dimensions = SplitList(input.Dimension)
	cfg.Indicators = SplitList(input.Indicator)
	cfg.Responses = SplitList(input.Response)
	cfg.Buckets = SplitList(input.Bucket)

	for _, r := range cfg.Responses {
		if schema.ParseResponse(r) == schema.Unanswered {
			return fmt.Errorf("invalid response '%s'", r)
		}
	}
	for _, b := range cfg.Buckets {
		if !slices.Contains(schema.AllBuckets, schema.ActionBucket(strings.ToLower(b))) {
			return fmt.Errorf("invalid bucket '%s'. must be none, limited, significant, extensive", b)
		}
	}
	return nil
}

// processServeAndCharts handles the dashboard and chart parameters.
func processServeAndCharts(cfg *Config, input *ConfigRawInput) error {
	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	cfg.Watch = input.Watch

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(input.AppEnv))
	if cfg.AppEnv == "" {
		cfg.AppEnv = DefaultAppEnv
	}
	if !slices.Contains(ValidAppEnvs, cfg.AppEnv) {
		return fmt.Errorf("invalid app env '%s'. must be development, production", input.AppEnv)
	}

	cfg.OutDir = input.OutDir
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}

	cfg.ChartWidth = input.ChartWidth
	if cfg.ChartWidth == 0 {
		cfg.ChartWidth = DefaultChartWidth
	}
	cfg.ChartHeight = input.ChartHeight
	if cfg.ChartHeight == 0 {
		cfg.ChartHeight = DefaultChartHeight
	}
	if cfg.ChartWidth < 0 || cfg.ChartWidth > MaxChartSize || cfg.ChartHeight < 0 || cfg.ChartHeight > MaxChartSize {
		return fmt.Errorf("chart size must be between 1 and %d inches (received %dx%d)", MaxChartSize, cfg.ChartWidth, cfg.ChartHeight)
	}
	return nil
}

// resolveWorkbookPath checks the positional workbook argument when one is given.
func resolveWorkbookPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.WorkbookPathStr)
	if path == "" {
		cfg.WorkbookPath = ""
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("workbook %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("workbook %q is a directory", path)
	}
	cfg.WorkbookPath = path
	return nil
}
