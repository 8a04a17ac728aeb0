// ABOUTME: Flat view of entries for listings and machine-readable output
// ABOUTME: Adds 1-based positions and marks the current entry
package journal

// Summary is an entry as shown by list and the MCP tools.
type Summary struct {
	Index   int    `json:"index"`
	Date    string `json:"date"`
	Text    string `json:"text"`
	Current bool   `json:"current"`
}

// Summaries returns every entry with its 1-based index.
func (s *Store) Summaries() []Summary {
	out := make([]Summary, len(s.entries))
	for i, e := range s.entries {
		out[i] = Summary{
			Index:   i + 1,
			Date:    e.DateString(),
			Text:    e.Text,
			Current: i == s.cursor,
		}
	}
	return out
}
