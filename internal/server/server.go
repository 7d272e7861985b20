package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/tools"
	"github.com/averycrespi/calculator-mcp/pkg/project"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	session   types.Session
	config    *types.Config
}

// NewCalculatorServer creates a new calculator MCP server
func NewCalculatorServer(config *types.Config, session types.Session) *CalculatorServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
	)

	s := &CalculatorServer{
		mcpServer: mcpServer,
		session:   session,
		config:    config,
	}
	s.registerTools()
	return s
}

// Serve serves the MCP protocol over stdio until the client disconnects
func (s *CalculatorServer) Serve(ctx context.Context) error {
	slog.Info("Starting calculator MCP server",
		"name", project.Name,
		"version", project.Version,
		"state_file", s.config.StateFile)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

// Tools returns the tools registered with the MCP server
func (s *CalculatorServer) Tools() []tools.Tool {
	return tools.All(s.session)
}

func (s *CalculatorServer) registerTools() {
	for _, tool := range s.Tools() {
		definition := tool.GetTool()
		s.mcpServer.AddTool(definition, tool.Handle)
		slog.Debug("Registered MCP tool", "tool", definition.Name)
	}
}
