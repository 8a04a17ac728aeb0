// ABOUTME: Tests for lenient date parsing
// ABOUTME: Covers relative words, strict format precedence and dateparse fallback
package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhen(t *testing.T) {
	now := time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", date(15, 3, 2024)},
		{"today", date(15, 3, 2024)},
		{"Yesterday", date(14, 3, 2024)},
		{"01.02.2024", date(1, 2, 2024)},
		{"2024-02-10", date(10, 2, 2024)},
		{"2024-02-10 18:45:00", date(10, 2, 2024)},
		{"March 3, 2024", date(3, 3, 2024)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWhen(tt.in, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects nonsense", func(t *testing.T) {
		_, err := ParseWhen("not a date at all", now)
		assert.Error(t, err)
	})
}

func TestSummaries(t *testing.T) {
	s, err := Open(writeDiary(t, "01.01.2024,Hello\n05.01.2024,World\n"))
	require.NoError(t, err)
	require.NoError(t, s.Prev())

	assert.Equal(t, []Summary{
		{Index: 1, Date: "01.01.2024", Text: "Hello", Current: true},
		{Index: 2, Date: "05.01.2024", Text: "World", Current: false},
	}, s.Summaries())
}
