package tools

import (
	"context"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetStateTool reads the calculator state without pressing a button
type GetStateTool struct {
	session types.Session
}

// NewGetStateTool creates a new get state tool
func NewGetStateTool(session types.Session) *GetStateTool {
	return &GetStateTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *GetStateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetState,
		mcp.WithDescription("Read the operands, pending operator and display lines of the calculator"),
	)
	return tool
}

// Handle processes the tool request
func (t *GetStateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slog.Debug("MCP tool called", "tool", ToolGetState)

	snapshot := t.session.Snapshot(ctx)
	return newToolResult(ToolGetState, results.StateToolResult{
		Message: "Current calculator state.",
		State:   results.NewCalculatorState(snapshot),
	})
}
