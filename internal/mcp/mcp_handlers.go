package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huangsam/maturity/core"
	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// goalColumnsResult is the payload of the goal_columns tool.
type goalColumnsResult struct {
	Candidates []schema.GoalColumn `json:"candidates"`
	Selected   []schema.GoalColumn `json:"selected"`
}

// configFor applies the tool arguments to a copy of the base config.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.WorkbookPath = request.GetString("workbook", "")
	if cfg.WorkbookPath == "" {
		return nil, errors.New("workbook is required")
	}

	goals := request.GetStringSlice("goals", nil)
	noGoals := request.GetBool("no_goals", false)
	switch {
	case noGoals && len(goals) > 0:
		return nil, errors.New("goals and no_goals cannot be combined")
	case noGoals:
		cfg.Goals = []string{}
	case goals != nil:
		cfg.Goals = goals
	}
	return cfg, nil
}

// report derives the report for the request, or an error result.
func (h *toolHandler) report(ctx context.Context, request mcp.CallToolRequest, command string, adjust func(*contract.Config)) (*schema.Report, *mcp.CallToolResult) {
	cfg, err := h.configFor(request)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err))
	}
	if adjust != nil {
		adjust(cfg)
	}
	ctx = core.WithCommand(core.WithSuppressHeader(ctx), command)
	report, _, err := core.GetReport(ctx, cfg, h.mgr)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err))
	}
	return report, nil
}

func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleQuestionGaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := h.report(ctx, request, "mcp:question_gaps", func(cfg *contract.Config) {
		cfg.Buckets = request.GetStringSlice("buckets", nil)
	})
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(schema.EnrichQuestions(report.Questions))
}

func (h *toolHandler) handleGoalColumns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := h.report(ctx, request, "mcp:goal_columns", nil)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(goalColumnsResult{Candidates: report.Goals, Selected: report.Selected})
}

func (h *toolHandler) handleIndicatorSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := h.report(ctx, request, "mcp:indicator_summary", nil)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(report.Indicators)
}

func (h *toolHandler) handlePriorities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := h.report(ctx, request, "mcp:priorities", func(cfg *contract.Config) {
		if l := request.GetInt("limit", 0); l > 0 {
			cfg.ResultLimit = l
		}
	})
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(schema.EnrichPriorities(report.Priorities))
}
