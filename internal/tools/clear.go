package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearTool handles the all-clear button
type ClearTool struct {
	session types.Session
}

// NewClearTool creates a new clear tool
func NewClearTool(session types.Session) *ClearTool {
	return &ClearTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolClear,
		mcp.WithDescription("Press the all-clear button, resetting both operands and the pending operator"),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slog.Debug("MCP tool called", "tool", ToolClear)

	transition, err := t.session.Clear(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear: %v", err)), nil
	}

	return newToolResult(ToolClear, results.StateToolResult{
		Message: "Cleared the calculator.",
		State:   results.NewCalculatorState(transition.State),
	})
}
