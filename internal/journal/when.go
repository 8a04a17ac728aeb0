// ABOUTME: Lenient date parsing for non-interactive entry creation
// ABOUTME: Accepts DD.MM.YYYY, relative words, or any dateparse format
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseWhen resolves s to a calendar date. An empty string, "today" and
// "yesterday" are relative to now. DD.MM.YYYY is tried before the formats
// dateparse recognizes, so 01.02.2024 is always the first of February.
func ParseWhen(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "", "today":
		return dateOnly(now), nil
	case "yesterday":
		return dateOnly(now.AddDate(0, 0, -1)), nil
	}

	if d, err := ParseDate(s); err == nil {
		return d, nil
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return dateOnly(t), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
