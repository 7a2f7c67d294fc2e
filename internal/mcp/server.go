// ABOUTME: MCP server exposing a nutri session to AI assistants.
// ABOUTME: Wraps the MCP server with the session it drives.
package mcp

import (
	"context"

	"github.com/harperreed/nutri/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with session access.
type Server struct {
	mcpServer *mcp.Server
	session   *session.Session
}

// NewServer creates a new MCP server bound to sess.
func NewServer(sess *session.Session) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "nutri",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		session:   sess,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
