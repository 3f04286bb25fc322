package cmd

import (
	"github.com/huangsam/maturity/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Maturity MCP server",
	Long: `Launch an MCP server that allows AI agents to compute question gaps, goal columns,
indicator summaries and priorities via standard tools. Report headers are
suppressed since stdio carries the protocol.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyManager)
	},
}
