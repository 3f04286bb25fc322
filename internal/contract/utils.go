package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/maturity/schema"
)

// Color variables for console output.
var (
	ExtensiveColor   = color.New(color.FgRed, color.Bold)     // ExtensiveColor represents the largest gap.
	SignificantColor = color.New(color.FgMagenta, color.Bold) // SignificantColor represents a strong, distinct gap.
	LimitedColor     = color.New(color.FgYellow)              // LimitedColor represents a small gap.
	NoActionColor    = color.New(color.FgCyan)                // NoActionColor represents an informational signal.
)

// GetPlainBucketLabel returns the plain English label of an action bucket.
// This is the label used for CSV, JSON and table printing.
func GetPlainBucketLabel(b schema.ActionBucket) string {
	return schema.EnglishDisplay(b.Label())
}

// GetColorBucketLabel returns a colored bucket label for console output (table).
func GetColorBucketLabel(b schema.ActionBucket) string {
	text := GetPlainBucketLabel(b)

	switch b {
	case schema.Extensive:
		return ExtensiveColor.Sprint(text)
	case schema.Significant:
		return SignificantColor.Sprint(text)
	case schema.Limited:
		return LimitedColor.Sprint(text)
	default:
		return NoActionColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".maturity_history.db"
	}
	return filepath.Join(homeDir, ".maturity_history.db")
}

// SplitList splits a comma-separated flag value, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
