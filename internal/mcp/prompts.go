// ABOUTME: MCP prompt definitions for diary
// ABOUTME: Provides static context to AI assistants about diary capabilities
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `Diary is a personal journal kept as a plain text file, one dated entry per line.

When to use diary:
- User asks to write something down in their diary or journal
- User asks what they wrote on a given day
- User wants to look back over recent entries

How entries work:
- Every entry has a day (DD.MM.YYYY) and free text
- Entries keep the order they were written in, not date order
- New entries always go to the end; several entries may share a day
- Text is stored on one line, so add_entry rejects text with commas or line breaks

Use list_entries with a small limit to catch up, get_entry to read one entry in full, and add_entry to append.`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "diary-getting-started",
		Description: "Introduction to diary and how AI assistants should use it",
	}
	s.mcpServer.AddPrompt(prompt, s.handleGettingStarted)
}

func (s *Server) handleGettingStarted(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	result := &mcp.GetPromptResult{
		Description: "Getting started with diary",
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: gettingStarted,
				},
			},
		},
	}

	return result, nil
}
