package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// EvaluateTool handles the equals button
type EvaluateTool struct {
	session types.Session
}

// NewEvaluateTool creates a new evaluate tool
func NewEvaluateTool(session types.Session) *EvaluateTool {
	return &EvaluateTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Press the equals button, applying the pending operator to both operands"),
	)
	return tool
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slog.Debug("MCP tool called", "tool", ToolEvaluate)

	transition, err := t.session.Evaluate(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to evaluate: %v", err)), nil
	}

	toolResult := results.EvaluateToolResult{
		Evaluated: transition.Applied,
		State:     results.NewCalculatorState(transition.State),
	}
	if transition.Applied {
		toolResult.Message = fmt.Sprintf("Result is %s.", transition.State.CurrentOperand)
	} else {
		toolResult.Message = "Nothing to evaluate: both operands and an operator are needed."
	}

	return newToolResult(ToolEvaluate, toolResult)
}
