// ABOUTME: Tests for MCP tools
// ABOUTME: Validates tool handlers against a temporary diary file
package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/harper/diary/internal/journal"
)

func newTestServer(t *testing.T, content string) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diary.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // Test file permissions
			t.Fatalf("failed to write diary: %v", err)
		}
	}
	return NewServer(path, zerolog.Nop())
}

func TestListEntriesTool(t *testing.T) {
	server := newTestServer(t, "01.01.2024,Hello\n05.01.2024,World\n10.01.2024,Again\n")

	t.Run("all entries", func(t *testing.T) {
		result, output, err := server.handleListEntries(context.Background(), nil, ListEntriesInput{})
		if err != nil {
			t.Fatalf("handleListEntries failed: %v", err)
		}
		if result == nil {
			t.Fatal("expected non-nil result")
		}
		if output.Total != 3 || len(output.Entries) != 3 {
			t.Fatalf("expected 3 entries, got %d of %d", len(output.Entries), output.Total)
		}
		if output.Entries[0].Text != "Hello" || output.Entries[0].Index != 1 {
			t.Errorf("unexpected first entry: %+v", output.Entries[0])
		}
		if !output.Entries[2].Current {
			t.Error("expected last entry to be current")
		}
	})

	t.Run("limit keeps the most recent", func(t *testing.T) {
		_, output, err := server.handleListEntries(context.Background(), nil, ListEntriesInput{Limit: 2})
		if err != nil {
			t.Fatalf("handleListEntries failed: %v", err)
		}
		if len(output.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(output.Entries))
		}
		if output.Entries[0].Index != 2 || output.Total != 3 {
			t.Errorf("unexpected output: %+v", output)
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		_, _, err := server.handleListEntries(context.Background(), nil, ListEntriesInput{Limit: -1})
		if err == nil {
			t.Error("expected error for negative limit")
		}
	})

	t.Run("empty diary", func(t *testing.T) {
		empty := newTestServer(t, "")
		result, output, err := empty.handleListEntries(context.Background(), nil, ListEntriesInput{})
		if err != nil {
			t.Fatalf("handleListEntries failed: %v", err)
		}
		if output.Total != 0 {
			t.Errorf("expected empty diary, got %d entries", output.Total)
		}
		if result == nil || len(result.Content) != 1 {
			t.Fatal("expected one content block")
		}
	})
}

func TestGetEntryTool(t *testing.T) {
	server := newTestServer(t, "01.01.2024,Hello\n05.01.2024,World\n")

	_, entry, err := server.handleGetEntry(context.Background(), nil, GetEntryInput{Index: 1})
	if err != nil {
		t.Fatalf("handleGetEntry failed: %v", err)
	}
	if entry.Date != "01.01.2024" || entry.Text != "Hello" {
		t.Errorf("unexpected entry: %+v", entry)
	}

	for _, index := range []int{0, 3, -1} {
		if _, _, err := server.handleGetEntry(context.Background(), nil, GetEntryInput{Index: index}); err == nil {
			t.Errorf("expected error for index %d", index)
		}
	}
}

func TestAddEntryTool(t *testing.T) {
	server := newTestServer(t, "01.01.2024,Hello\n")

	result, output, err := server.handleAddEntry(context.Background(), nil, AddEntryInput{
		Date: "2024-01-10",
		Text: "from an assistant",
	})
	if err != nil {
		t.Fatalf("handleAddEntry failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if output.Date != "10.01.2024" || output.Index != 2 || output.Total != 2 {
		t.Errorf("unexpected output: %+v", output)
	}

	content, err := os.ReadFile(server.path)
	if err != nil {
		t.Fatalf("failed to read diary: %v", err)
	}
	if string(content) != "01.01.2024,Hello\n10.01.2024,from an assistant\n" {
		t.Errorf("unexpected diary content: %q", content)
	}

	t.Run("defaults to today", func(t *testing.T) {
		_, output, err := server.handleAddEntry(context.Background(), nil, AddEntryInput{Text: "today"})
		if err != nil {
			t.Fatalf("handleAddEntry failed: %v", err)
		}
		if output.Date != time.Now().Format("02.01.2006") {
			t.Errorf("expected today's date, got %s", output.Date)
		}
	})

	t.Run("rejects empty text", func(t *testing.T) {
		if _, _, err := server.handleAddEntry(context.Background(), nil, AddEntryInput{Text: "  "}); err == nil {
			t.Error("expected error for empty text")
		}
	})

	t.Run("rejects text the next load would drop", func(t *testing.T) {
		for _, text := range []string{"Hello, world", "line one\nline two"} {
			_, _, err := server.handleAddEntry(context.Background(), nil, AddEntryInput{Date: "01.02.2024", Text: text})
			if !errors.Is(err, journal.ErrUnstorableText) {
				t.Errorf("expected ErrUnstorableText for %q, got %v", text, err)
			}
		}

		_, output, err := server.handleListEntries(context.Background(), nil, ListEntriesInput{})
		if err != nil {
			t.Fatalf("handleListEntries failed: %v", err)
		}
		for _, e := range output.Entries {
			if e.Date == "01.02.2024" {
				t.Errorf("rejected text was stored: %+v", e)
			}
		}
	})

	t.Run("trailing line break is dropped", func(t *testing.T) {
		_, _, err := server.handleAddEntry(context.Background(), nil, AddEntryInput{Date: "02.02.2024", Text: "one line\n"})
		if err != nil {
			t.Fatalf("handleAddEntry failed: %v", err)
		}
		_, last, err := server.handleGetEntry(context.Background(), nil, GetEntryInput{Index: 4})
		if err != nil {
			t.Fatalf("handleGetEntry failed: %v", err)
		}
		if last.Text != "one line" {
			t.Errorf("expected trimmed text, got %q", last.Text)
		}
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		if _, _, err := server.handleAddEntry(context.Background(), nil, AddEntryInput{Date: "not a date", Text: "x"}); err == nil {
			t.Error("expected error for invalid date")
		}
	})

	t.Run("refuses to write over an unreadable diary", func(t *testing.T) {
		broken := NewServer(t.TempDir(), zerolog.Nop())
		_, _, err := broken.handleAddEntry(context.Background(), nil, AddEntryInput{Text: "x"})
		if err == nil || !strings.Contains(err.Error(), "failed to load diary") {
			t.Errorf("expected load error, got %v", err)
		}
	})
}
