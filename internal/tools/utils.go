package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
)

// IsValidToken reports whether token is a single calculator button: a digit or the decimal point
func IsValidToken(token string) bool {
	if len(token) != 1 {
		return false
	}
	c := token[0]
	return c == '.' || (c >= '0' && c <= '9')
}

// newToolResult marshals a tool result into an indented JSON text result
func newToolResult(tool string, toolResult any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		slog.Error("Failed to marshal tool result", "tool", tool, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result into JSON: %v", err)), nil
	}

	slog.Debug("MCP tool completed successfully", "tool", tool)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
