// ABOUTME: Diagnostic logger setup
// ABOUTME: Writes zerolog JSON records to a file, tagged with a session id
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a logger writing to path at level. An empty path or level
// yields a disabled logger. The returned closer releases the log file.
func New(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" || level == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return zerolog.Nop(), io.NopCloser(nil), err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // Log file
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), err
	}

	return NewWriter(f, lvl), f, nil
}

// NewWriter returns a logger writing to w.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}
