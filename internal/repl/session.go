// ABOUTME: Interactive command loop over the diary store
// ABOUTME: Dispatches the six commands and redraws the status header
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/harper/diary/internal/journal"
)

const (
	separator   = "-----------------------------------------"
	clearScreen = "\033[H\033[2J"
)

var (
	headerColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	noticeColor  = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

// Session is one run of the command loop. It owns no global state; the store
// is built by the caller and handed in.
type Session struct {
	store  *journal.Store
	in     LineReader
	out    io.Writer
	locale Locale
	clear  bool
	log    zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLocale sets the command words and messages.
func WithLocale(l Locale) Option {
	return func(s *Session) {
		s.locale = l
	}
}

// WithClearScreen enables clearing the terminal after each command is read.
func WithClearScreen(enabled bool) Option {
	return func(s *Session) {
		s.clear = enabled
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// NewSession creates a command loop reading from in and writing to out.
func NewSession(store *journal.Store, in LineReader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		store:  store,
		in:     in,
		out:    out,
		locale: English,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the quit command or end of input. Both return nil.
func (s *Session) Run() error {
	for {
		s.renderHeader()
		fmt.Fprintln(s.out, s.locale.CommandPrompt)

		line, err := s.in.ReadLine()
		if err != nil {
			return endOfInput(err)
		}

		if s.clear {
			fmt.Fprint(s.out, clearScreen)
		}

		quit, err := s.dispatch(strings.TrimSpace(line))
		if err != nil {
			return endOfInput(err)
		}
		if quit {
			s.log.Debug().Msg("quit")
			return nil
		}
	}
}

// ReportLoadError prints a failed startup load.
func (s *Session) ReportLoadError(err error) {
	s.fail(fmt.Sprintf(s.locale.LoadFailed, err))
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// dispatch runs one command. It reports whether the loop should stop; a
// non-nil error means input failed mid-command.
func (s *Session) dispatch(cmd string) (bool, error) {
	l := s.locale

	s.log.Debug().Str("command", cmd).Msg("dispatch")

	switch cmd {
	case l.Prev:
		if err := s.store.Prev(); err != nil {
			s.notice(l.NoPrevious)
		}
	case l.Next:
		if err := s.store.Next(); err != nil {
			s.notice(l.NoNext)
		}
	case l.New:
		return false, s.newEntry()
	case l.Save:
		s.save()
	case l.Delete:
		return false, s.deleteCurrent()
	case l.Quit:
		return true, nil
	default:
		s.fail(l.InvalidCommand)
	}

	return false, nil
}

// newEntry asks for a date until one parses, then collects text lines up to
// the terminator and appends the entry.
func (s *Session) newEntry() error {
	l := s.locale

	fmt.Fprintln(s.out, l.DatePrompt)

	var date time.Time
	for {
		line, err := s.in.ReadLine()
		if err != nil {
			return err
		}
		d, err := journal.ParseDate(strings.TrimSpace(line))
		if err == nil {
			date = d
			break
		}
		s.fail(l.DateRetry)
	}

	fmt.Fprintf(s.out, l.TextPrompt+"\n", l.Terminator)

	var text strings.Builder
	for {
		line, err := s.in.ReadLine()
		if err != nil {
			return err
		}
		if line == l.Terminator {
			break
		}
		text.WriteString(line)
		text.WriteString("\n")
	}

	if err := s.store.Append(date, text.String()); err != nil {
		s.saveFailed(err)
	}
	return nil
}

func (s *Session) save() {
	l := s.locale

	if _, ok := s.store.Current(); !ok {
		s.fail(l.NothingToSave)
		return
	}

	s.success(l.Saved)
	if err := s.store.Save(); err != nil {
		s.saveFailed(err)
	}
}

// deleteCurrent asks for confirmation and removes the current entry. Only the
// accept character deletes; any other answer cancels without a message.
func (s *Session) deleteCurrent() error {
	l := s.locale

	if _, ok := s.store.Current(); !ok {
		s.fail(l.NoCurrentToDelete)
		return nil
	}

	fmt.Fprintln(s.out, separator)
	fmt.Fprintf(s.out, l.ConfirmDelete+"\n", l.Accept)

	answer, err := s.in.ReadLine()
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != strings.ToLower(l.Accept) {
		return nil
	}

	absent, err := s.store.DeleteCurrent()
	if absent {
		s.notice(l.Removed)
	}
	if err != nil {
		s.saveFailed(err)
	}
	return nil
}

// Header returns the status text: instructions, entry count and the current
// entry when there is one.
func (s *Session) Header() string {
	l := s.locale
	var sb strings.Builder

	sb.WriteString("\n" + l.Title + "\n")
	for _, c := range [][2]string{
		{l.Prev, l.PrevHelp},
		{l.Next, l.NextHelp},
		{l.New, l.NewHelp},
		{l.Save, l.SaveHelp},
		{l.Delete, l.DeleteHelp},
		{l.Quit, l.QuitHelp},
	} {
		fmt.Fprintf(&sb, "- %s: %s\n", c[0], c[1])
	}
	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, l.EntryCount+"\n", s.store.Len())

	if cur, ok := s.store.Current(); ok {
		sb.WriteString(separator + "\n")
		sb.WriteString(l.CurrentEntry + "\n")
		fmt.Fprintf(&sb, l.DateLabel+"\n", cur.DateString())
		sb.WriteString(cur.Text + "\n")
	}

	return sb.String()
}

func (s *Session) renderHeader() {
	headerColor.Fprint(s.out, s.Header())
}

func (s *Session) saveFailed(err error) {
	s.log.Error().Err(err).Str("path", s.store.Path()).Msg("save failed")
	s.fail(fmt.Sprintf(s.locale.SaveFailed, err))
}

func (s *Session) fail(msg string) {
	errorColor.Fprintln(s.out, msg)
}

func (s *Session) notice(msg string) {
	noticeColor.Fprintln(s.out, msg)
}

func (s *Session) success(msg string) {
	successColor.Fprintln(s.out, msg)
}
