// ABOUTME: Diary export to per-day files
// ABOUTME: Formats entries as markdown or JSON and appends to daily files
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/diary/internal/journal"
)

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// jsonEntry is the JSON shape of an exported entry.
type jsonEntry struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// WriteEntry appends entry to the export file for its day
func WriteEntry(dir, format string, entry journal.Entry) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return "", err
	}

	// One file per day
	day := entry.Date.Format("2006-01-02")

	var content, ext string
	switch format {
	case FormatJSON:
		data, err := json.Marshal(jsonEntry{Date: entry.DateString(), Text: entry.Text})
		if err != nil {
			return "", err
		}
		content = string(data) + "\n"
		ext = ".json"
	case FormatMarkdown, "":
		content = formatMarkdown(entry)
		ext = ".md"
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}

	path := filepath.Join(dir, day+ext)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // User data file
	if err != nil {
		return "", err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return path, err
}

// WriteAll exports every entry and returns the distinct files written, in order.
func WriteAll(dir, format string, entries []journal.Entry) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, entry := range entries {
		path, err := WriteEntry(dir, format, entry)
		if err != nil {
			return files, fmt.Errorf("export %s: %w", entry.DateString(), err)
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	return files, nil
}

func formatMarkdown(entry journal.Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n\n", entry.Date.Format("Monday, 2 January 2006")))
	sb.WriteString(strings.TrimRight(entry.Text, "\n"))
	sb.WriteString("\n\n")

	return sb.String()
}
