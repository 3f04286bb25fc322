package cmd

import (
	"runtime"
	"slices"
	"strings"

	"github.com/huangsam/maturity/schema"
	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of maturity.",
	Long: `Display version information including build details.

Shows:
- Release version, commit and build timestamp
- Go runtime version
- Supported output formats and history backends

Useful for reporting bugs with version details.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("maturity CLI\n")
		cmd.Printf("  Version:  %s\n", version)
		cmd.Printf("  Commit:   %s\n", commit)
		cmd.Printf("  Built:    %s\n", date)
		cmd.Printf("  Runtime:  %s\n", runtime.Version())
		cmd.Printf("  Outputs:  %s\n", sortedKeys(schema.ValidOutputModes))
		cmd.Printf("  Backends: %s\n", sortedKeys(schema.ValidDatabaseBackends))
	},
}

func sortedKeys[K ~string, V any](m map[K]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}
