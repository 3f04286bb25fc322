// Package main provides a performance benchmarking tool for the maturity CLI.
// It measures execution times of the report commands over a directory of
// assessment workbooks, running each command several times with the run
// history disabled and then recorded in SQLite, and writes a CSV summary.
//
// Prerequisites:
// - maturity binary installed and available in PATH
// - One or more .xlsx assessment workbooks in the given directory
//
// Usage: go run benchmark/main.go [workbook-dir]
//
//	workbook-dir: Directory containing assessment workbooks
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the average times of one command on one workbook.
type BenchmarkResult struct {
	Workbook    string
	Command     string
	NoHistory   string
	WithHistory string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkbookDir string
	Timeout     time.Duration
	Runs        int
	Commands    map[string][]string // Command to extra arguments
	Order       []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [workbook-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkbookDir: os.Args[1],
		Timeout:     time.Minute,
		Runs:        5,
		Commands: map[string][]string{
			"gaps":       {"--output", "csv"},
			"indicators": {"--output", "csv"},
			"priorities": {"--output", "csv"},
			"charts":     {"--out-dir", os.TempDir()},
		},
		Order: []string{"gaps", "indicators", "priorities", "charts"},
	}

	workbooks, err := checkPrerequisites(config)
	if err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	historyDB := filepath.Join(os.TempDir(), fmt.Sprintf("maturity_benchmark_%d.db", time.Now().UnixNano()))
	defer func() { _ = os.Remove(historyDB) }()

	results := runBenchmarks(config, workbooks, historyDB)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the maturity binary and workbooks exist
func checkPrerequisites(config BenchmarkConfig) ([]string, error) {
	if _, err := exec.LookPath("maturity"); err != nil {
		return nil, fmt.Errorf("maturity binary not found in PATH")
	}
	workbooks, err := filepath.Glob(filepath.Join(config.WorkbookDir, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	if len(workbooks) == 0 {
		return nil, fmt.Errorf("no .xlsx workbook found in %s", config.WorkbookDir)
	}
	return workbooks, nil
}

// runBenchmarks executes every command on every workbook
func runBenchmarks(config BenchmarkConfig, workbooks []string, historyDB string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d workbooks, %d commands, %v timeout, %d runs\n",
		len(workbooks), len(config.Order), config.Timeout, config.Runs)

	for _, wb := range workbooks {
		name := filepath.Base(wb)
		fmt.Printf("Benchmarking %s\n", name)
		for _, command := range config.Order {
			args := append([]string{command, wb}, config.Commands[command]...)
			noHistory := runBenchmark(config, args, nil)
			withHistory := runBenchmark(config, args, []string{
				"MATURITY_HISTORY_BACKEND=sqlite",
				"MATURITY_HISTORY_DB_CONNECT=" + historyDB,
			})
			fmt.Printf("  %-11s no history: %s, with history: %s\n", command, noHistory, withHistory)
			results = append(results, BenchmarkResult{
				Workbook:    name,
				Command:     command,
				NoHistory:   noHistory,
				WithHistory: withHistory,
			})
		}
	}
	return results
}

// runBenchmark runs the command several times and returns the average time
func runBenchmark(config BenchmarkConfig, args, env []string) string {
	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("maturity", args...)
		cmd.Env = append(os.Environ(), env...)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.CombinedOutput()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) == 0 {
		return "FAILED"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("maturity_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"workbook", "cmd", "no_history_avg", "history_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Workbook, result.Command, result.NoHistory, result.WithHistory}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results per command
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range config.Order {
		fmt.Printf("%s:\n", strings.ToUpper(command[:1])+command[1:])
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-24s: No history: %s, History: %s\n", result.Workbook, result.NoHistory, result.WithHistory)
			}
		}
	}
}
