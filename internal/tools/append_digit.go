package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// AppendDigitTool handles digit and decimal point button presses
type AppendDigitTool struct {
	session types.Session
}

// NewAppendDigitTool creates a new append digit tool
func NewAppendDigitTool(session types.Session) *AppendDigitTool {
	return &AppendDigitTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *AppendDigitTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolAppendDigit,
		mcp.WithDescription("Press a digit or decimal point button, appending it to the operand being entered"),
		mcp.WithString(
			"token",
			mcp.Required(),
			mcp.Description("A single digit 0-9 or the decimal point '.'"),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *AppendDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token := mcp.ParseString(req, "token", "")
	if token == "" {
		slog.Debug("MCP tool called with missing token parameter", "tool", ToolAppendDigit)
		return mcp.NewToolResultError("token parameter is required"), nil
	}

	if !IsValidToken(token) {
		slog.Debug("Invalid token provided", "tool", ToolAppendDigit, "token", token)
		return mcp.NewToolResultError(fmt.Sprintf("'%s' is not a digit or decimal point", token)), nil
	}

	slog.Debug("MCP tool called", "tool", ToolAppendDigit, "token", token)

	transition, err := t.session.AppendDigit(ctx, token)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to append %s: %v", token, err)), nil
	}

	toolResult := results.AppendDigitToolResult{
		Arguments: results.AppendDigitToolArgs{Token: token},
		State:     results.NewCalculatorState(transition.State),
	}
	if transition.Applied {
		toolResult.Message = fmt.Sprintf("Appended %s to the current operand.", token)
	} else {
		toolResult.Message = "Ignored decimal point: the current operand already contains one."
	}

	return newToolResult(ToolAppendDigit, toolResult)
}
