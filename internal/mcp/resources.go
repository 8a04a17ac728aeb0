// ABOUTME: MCP resource implementations for diary
// ABOUTME: Provides the most recent entry as readable context
package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const currentURI = "diary://current"

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	current := &mcp.Resource{
		URI:         currentURI,
		Name:        "Current Entry",
		Description: "The last diary entry, the one the prompt opens on",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(current, s.handleCurrent)
}

// handleCurrent implements the current-entry resource.
func (s *Server) handleCurrent(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	store, err := s.openStore()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var contextData struct {
		Total   int    `json:"total"`
		Index   int    `json:"index,omitempty"`
		Date    string `json:"date,omitempty"`
		Text    string `json:"text,omitempty"`
		Message string `json:"message,omitempty"`
	}
	contextData.Total = store.Len()

	if cur, ok := store.Current(); ok {
		contextData.Index = store.Position() + 1
		contextData.Date = cur.DateString()
		contextData.Text = cur.Text
	} else {
		contextData.Message = "The diary has no entries yet"
	}

	data, err := json.MarshalIndent(contextData, "", "  ")
	if err != nil {
		return nil, err
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      currentURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}

	return result, nil
}
