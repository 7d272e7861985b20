package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ChooseOperatorTool handles operator button presses
type ChooseOperatorTool struct {
	session types.Session
}

// NewChooseOperatorTool creates a new choose operator tool
func NewChooseOperatorTool(session types.Session) *ChooseOperatorTool {
	return &ChooseOperatorTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *ChooseOperatorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolChooseOperator,
		mcp.WithDescription("Press an operator button. A pending operation is evaluated first, so operations chain left to right."),
		mcp.WithString(
			"operator",
			mcp.Required(),
			mcp.Description("One of add, subtract, multiply, divide (or +, -, *, /, ×, ÷)"),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *ChooseOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operatorStr := mcp.ParseString(req, "operator", "")
	if operatorStr == "" {
		slog.Debug("MCP tool called with missing operator parameter", "tool", ToolChooseOperator)
		return mcp.NewToolResultError("operator parameter is required"), nil
	}

	op, err := calculator.ParseOperator(operatorStr)
	if err != nil {
		slog.Debug("Invalid operator provided", "tool", ToolChooseOperator, "operator", operatorStr)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid operator: %v", err)), nil
	}

	slog.Debug("MCP tool called", "tool", ToolChooseOperator, "operator", op.Name())

	transition, err := t.session.ChooseOperator(ctx, op)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to choose operator %s: %v", op.Name(), err)), nil
	}

	toolResult := results.ChooseOperatorToolResult{
		Arguments: results.ChooseOperatorToolArgs{Operator: operatorStr},
		State:     results.NewCalculatorState(transition.State),
	}
	switch {
	case !transition.Applied:
		toolResult.Message = "No operator chosen: enter an operand first."
	case transition.From == calculator.PhaseEnteringSecond:
		toolResult.Message = fmt.Sprintf("Evaluated the pending operation and chose %s.", op.Name())
	default:
		toolResult.Message = fmt.Sprintf("Chose %s.", op.Name())
	}

	return newToolResult(ToolChooseOperator, toolResult)
}
