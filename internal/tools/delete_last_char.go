package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// DeleteLastCharTool handles the delete button
type DeleteLastCharTool struct {
	session types.Session
}

// NewDeleteLastCharTool creates a new delete last char tool
func NewDeleteLastCharTool(session types.Session) *DeleteLastCharTool {
	return &DeleteLastCharTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *DeleteLastCharTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolDeleteLastChar,
		mcp.WithDescription("Press the delete button, removing the last character of the operand being entered"),
	)
	return tool
}

// Handle processes the tool request
func (t *DeleteLastCharTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slog.Debug("MCP tool called", "tool", ToolDeleteLastChar)

	transition, err := t.session.DeleteLastChar(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete last character: %v", err)), nil
	}

	toolResult := results.StateToolResult{
		State: results.NewCalculatorState(transition.State),
	}
	if transition.Applied {
		toolResult.Message = "Deleted the last character."
	} else {
		toolResult.Message = "Nothing to delete: the current operand is empty."
	}

	return newToolResult(ToolDeleteLastChar, toolResult)
}
