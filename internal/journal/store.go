// ABOUTME: In-memory entry sequence with a single movable cursor
// ABOUTME: Loads from and rewrites the flat diary file
package journal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// noCursor marks the ABSENT cursor state.
const noCursor = -1

var (
	ErrNoPrevious = errors.New("no previous entry")
	ErrNoNext     = errors.New("no next entry")
	ErrNoCurrent  = errors.New("no current entry")
)

// Store holds the ordered entries, the cursor and the path of the backing file.
type Store struct {
	path    string
	entries []Entry
	cursor  int
	log     zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore returns an empty store backed by path. Call Load to read the file.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		cursor: noCursor,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open builds a store for path and loads it.
func Open(path string, opts ...Option) (*Store, error) {
	s := NewStore(path, opts...)
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the store contents with the file contents. A missing file
// yields an empty store. Malformed lines are skipped. On a read failure the
// store is left empty and the error is returned.
func (s *Store) Load() error {
	s.entries = nil
	s.cursor = noCursor

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("diary file not found, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open diary: %w", err)
	}
	defer f.Close()

	var loaded []Entry
	skipped := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		loaded = append(loaded, entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read diary: %w", err)
	}

	s.entries = loaded
	s.cursor = len(loaded) - 1

	s.log.Debug().
		Str("path", s.path).
		Int("entries", len(loaded)).
		Int("skipped", skipped).
		Msg("diary loaded")

	return nil
}

// Save rewrites the whole file, one line per entry in sequence order.
func (s *Store) Save() (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create diary: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close diary: %w", closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, e := range s.entries {
		if _, err := w.WriteString(formatLine(e) + "\n"); err != nil {
			return fmt.Errorf("write diary: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write diary: %w", err)
	}

	s.log.Debug().Str("path", s.path).Int("entries", len(s.entries)).Msg("diary saved")
	return nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Position returns the cursor index, or -1 when there is no current entry.
func (s *Store) Position() int {
	return s.cursor
}

// Current returns the entry under the cursor.
func (s *Store) Current() (Entry, bool) {
	if s.cursor == noCursor {
		return Entry{}, false
	}
	return s.entries[s.cursor], true
}

// Entries returns a copy of the sequence.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// At returns the entry at index i.
func (s *Store) At(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Prev moves the cursor to its predecessor.
func (s *Store) Prev() error {
	if s.cursor == noCursor || s.cursor == 0 {
		return ErrNoPrevious
	}
	s.cursor--
	return nil
}

// Next moves the cursor to its successor.
func (s *Store) Next() error {
	if s.cursor == noCursor || s.cursor == len(s.entries)-1 {
		return ErrNoNext
	}
	s.cursor++
	return nil
}

// Append adds an entry at the end, points the cursor at it and saves. The
// entry stays in memory even when saving fails.
func (s *Store) Append(date time.Time, text string) error {
	s.entries = append(s.entries, Entry{Date: date, Text: text})
	s.cursor = len(s.entries) - 1
	return s.Save()
}

// DeleteCurrent removes the entry under the cursor and moves the cursor to the
// former successor. It reports whether the cursor ended up absent.
func (s *Store) DeleteCurrent() (bool, error) {
	if s.cursor == noCursor {
		return false, ErrNoCurrent
	}

	i := s.cursor
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if i >= len(s.entries) {
		s.cursor = noCursor
	}

	return s.cursor == noCursor, s.Save()
}
