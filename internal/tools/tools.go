package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolAppendDigit    = "append_digit"
	ToolChooseOperator = "choose_operator"
	ToolEvaluate       = "evaluate"
	ToolDeleteLastChar = "delete_last_char"
	ToolClear          = "clear"
	ToolGetState       = "get_state"
)

// Tool is an MCP tool definition paired with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool bound to the session
func All(session types.Session) []Tool {
	return []Tool{
		NewAppendDigitTool(session),
		NewChooseOperatorTool(session),
		NewEvaluateTool(session),
		NewDeleteLastCharTool(session),
		NewClearTool(session),
		NewGetStateTool(session),
	}
}
