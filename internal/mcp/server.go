// ABOUTME: MCP server implementation for diary
// ABOUTME: Exposes diary entries to AI assistants over stdio
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harper/diary/internal/journal"
)

// Server wraps the MCP server with diary-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	path      string
	log       zerolog.Logger

	// mu serializes load-modify-save cycles on the diary file.
	mu sync.Mutex
}

// NewServer creates a new diary MCP server backed by the file at path.
func NewServer(path string, log zerolog.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "diary",
		Version: "0.1.0",
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		path:      path,
		log:       log,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().Str("path", s.path).Msg("mcp server starting")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// openStore reads the diary fresh for each request so edits made from the
// prompt or the add command are visible.
func (s *Server) openStore() (*journal.Store, error) {
	store, err := journal.Open(s.path, journal.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("failed to load diary: %w", err)
	}
	return store, nil
}
