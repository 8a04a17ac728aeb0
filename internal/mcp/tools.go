// ABOUTME: MCP tool implementations for diary
// ABOUTME: Lists, fetches and appends entries
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/diary/internal/journal"
)

// ListEntriesInput defines the input for list_entries tool.
type ListEntriesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Only return this many of the most recent entries"`
}

// ListEntriesOutput defines the output for list_entries tool.
type ListEntriesOutput struct {
	Entries []journal.Summary `json:"entries" jsonschema:"Entries in diary order"`
	Total   int               `json:"total" jsonschema:"Number of entries in the diary"`
}

// GetEntryInput defines the input for get_entry tool.
type GetEntryInput struct {
	Index int `json:"index" jsonschema:"1-based position of the entry as shown by list_entries"`
}

// AddEntryInput defines the input for add_entry tool.
type AddEntryInput struct {
	Date string `json:"date,omitempty" jsonschema:"Entry date as DD.MM.YYYY, today, yesterday or another common format; defaults to today"`
	Text string `json:"text" jsonschema:"The entry text on a single line without commas"`
}

// AddEntryOutput defines the output for add_entry tool.
type AddEntryOutput struct {
	Index int    `json:"index" jsonschema:"1-based position of the new entry"`
	Date  string `json:"date" jsonschema:"Stored date as DD.MM.YYYY"`
	Total int    `json:"total" jsonschema:"Number of entries after the append"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	listTool := &mcp.Tool{
		Name:        "list_entries",
		Description: "List diary entries in the order they were written. Use limit to fetch only the most recent ones.",
	}
	mcp.AddTool(s.mcpServer, listTool, s.handleListEntries)

	getTool := &mcp.Tool{
		Name:        "get_entry",
		Description: "Fetch one diary entry by its 1-based index.",
	}
	mcp.AddTool(s.mcpServer, getTool, s.handleGetEntry)

	addTool := &mcp.Tool{
		Name:        "add_entry",
		Description: "Append an entry to the end of the diary. Use this when the user asks to write something down in their diary.",
	}
	mcp.AddTool(s.mcpServer, addTool, s.handleAddEntry)
}

// handleListEntries implements the list_entries tool.
func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	if input.Limit < 0 {
		return nil, ListEntriesOutput{}, fmt.Errorf("limit must not be negative")
	}

	s.mu.Lock()
	store, err := s.openStore()
	s.mu.Unlock()
	if err != nil {
		return nil, ListEntriesOutput{}, err
	}

	entries := store.Summaries()
	if input.Limit > 0 && input.Limit < len(entries) {
		entries = entries[len(entries)-input.Limit:]
	}

	var text strings.Builder
	if len(entries) == 0 {
		text.WriteString("The diary is empty.")
	}
	for _, e := range entries {
		fmt.Fprintf(&text, "%d. %s: %s\n", e.Index, e.Date, strings.TrimRight(e.Text, "\n"))
	}

	output := ListEntriesOutput{
		Entries: entries,
		Total:   store.Len(),
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text.String()},
		},
	}

	return result, output, nil
}

// handleGetEntry implements the get_entry tool.
func (s *Server) handleGetEntry(ctx context.Context, req *mcp.CallToolRequest, input GetEntryInput) (*mcp.CallToolResult, journal.Summary, error) {
	s.mu.Lock()
	store, err := s.openStore()
	s.mu.Unlock()
	if err != nil {
		return nil, journal.Summary{}, err
	}

	summaries := store.Summaries()
	if input.Index < 1 || input.Index > len(summaries) {
		return nil, journal.Summary{}, fmt.Errorf("no entry at index %d (diary has %d entries)", input.Index, len(summaries))
	}
	entry := summaries[input.Index-1]

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("%s\n%s", entry.Date, entry.Text),
			},
		},
	}

	return result, entry, nil
}

// handleAddEntry implements the add_entry tool.
func (s *Server) handleAddEntry(ctx context.Context, req *mcp.CallToolRequest, input AddEntryInput) (*mcp.CallToolResult, AddEntryOutput, error) {
	text, err := journal.ValidText(input.Text)
	if err != nil {
		return nil, AddEntryOutput{}, fmt.Errorf("invalid text: %w", err)
	}

	date, err := journal.ParseWhen(input.Date, time.Now())
	if err != nil {
		return nil, AddEntryOutput{}, fmt.Errorf("invalid date: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.openStore()
	if err != nil {
		return nil, AddEntryOutput{}, err
	}

	if err := store.Append(date, text); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("mcp append failed")
		return nil, AddEntryOutput{}, fmt.Errorf("failed to save entry: %w", err)
	}

	s.log.Info().Str("date", date.Format(journal.DateLayout)).Int("entries", store.Len()).Msg("entry added over mcp")

	output := AddEntryOutput{
		Index: store.Len(),
		Date:  date.Format(journal.DateLayout),
		Total: store.Len(),
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Entry added for %s (entry %d of %d)", output.Date, output.Index, output.Total),
			},
		},
	}

	return result, output, nil
}
