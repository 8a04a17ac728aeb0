// ABOUTME: Diary entry model and the flat-file line format
// ABOUTME: Parses and formats "DD.MM.YYYY,text" records
package journal

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the fixed day.month.year layout used on disk and at the prompt.
const DateLayout = "02.01.2006"

// Entry is one diary record.
type Entry struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// DateString formats the entry date with DateLayout.
func (e Entry) DateString() string {
	return e.Date.Format(DateLayout)
}

// ParseDate parses s strictly as DD.MM.YYYY.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ErrUnstorableText is returned by ValidText for text the line format cannot hold.
var ErrUnstorableText = errors.New("text cannot contain commas or line breaks")

// ValidText trims one trailing line break and rejects text that would not
// survive a reload: a comma or an inner line break splits the record.
func ValidText(text string) (string, error) {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if strings.TrimSpace(text) == "" {
		return "", errors.New("entry text is empty")
	}
	if strings.ContainsAny(text, ",\r\n") {
		return "", ErrUnstorableText
	}
	return text, nil
}

// parseLine decodes one stored line. Lines with more or fewer than one comma,
// or with an unparseable date, are rejected.
func parseLine(line string) (Entry, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return Entry{}, false
	}

	date, err := ParseDate(parts[0])
	if err != nil {
		return Entry{}, false
	}

	return Entry{Date: date, Text: parts[1]}, true
}

// formatLine encodes an entry without escaping; text is written verbatim.
func formatLine(e Entry) string {
	return e.DateString() + "," + e.Text
}
