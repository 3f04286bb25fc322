// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// selectionOptions are the arguments every tool accepts.
func selectionOptions(description string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithString("workbook", mcp.Description("Path to the assessment workbook (.xlsx)."), mcp.Required()),
		mcp.WithArray("goals", mcp.Description("Goal columns to weigh utility with. Defaults to every detected goal."), mcp.WithStringItems()),
		mcp.WithBoolean("no_goals", mcp.Description("Ignore goal columns and use the precomputed Total Utility.")),
	}
}

// NewMCPServer initializes and configures the maturity MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Maturity Assessment Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: question_gaps ---
	s.AddTool(mcp.NewTool("question_gaps", append(selectionOptions(
		"Compute target minus current maturity for every assessment question, with its action category."),
		mcp.WithArray("buckets", mcp.Description("Only keep these action categories (none, limited, significant, extensive)."), mcp.WithStringItems()),
	)...), h.handleQuestionGaps)

	// --- 2. Tool: goal_columns ---
	s.AddTool(mcp.NewTool("goal_columns", selectionOptions(
		"List the goal columns detected in the Overview sheet and which ones are selected.")...,
	), h.handleGoalColumns)

	// --- 3. Tool: indicator_summary ---
	s.AddTool(mcp.NewTool("indicator_summary", selectionOptions(
		"Summarize total utility, maturity gap and total impact per indicator.")...,
	), h.handleIndicatorSummary)

	// --- 4. Tool: priorities ---
	s.AddTool(mcp.NewTool("priorities", append(selectionOptions(
		"Rank the measures to implement next by the total impact of their indicator."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of priorities returned.")),
	)...), h.handlePriorities)

	return s
}

// StartMCPServer starts the maturity MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
