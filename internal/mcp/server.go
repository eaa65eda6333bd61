// ABOUTME: MCP server wiring for the CuraQ article tools
// ABOUTME: Registers tools and guards dispatch so every outcome renders as text

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/curaq/curaq-mcp/internal/api"
	"github.com/curaq/curaq-mcp/internal/render"
)

// Server wraps the MCP server with the backend client. The client is
// immutable, so concurrent tool invocations share it without locking.
type Server struct {
	mcpServer *server.MCPServer
	client    *api.Client
}

// NewServer creates the MCP server and registers the five article tools.
func NewServer(client *api.Client, version string) *Server {
	s := &Server{client: client}

	s.mcpServer = server.NewMCPServer(
		"curaq",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// guard wraps a tool handler so that truly unanticipated faults still
// come back as a text result rather than a protocol error. Expected
// failures never reach this far; handlers resolve them to text
// themselves.
func guard(h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = mcp.NewToolResultText(render.UnexpectedFailure(r))
				err = nil
			}
		}()
		return h(ctx, req)
	}
}
