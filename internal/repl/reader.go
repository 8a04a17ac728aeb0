// ABOUTME: Line sources for the command loop
// ABOUTME: Plain scanner input for pipes and tests, readline on a terminal
package repl

import (
	"bufio"
	"io"

	"github.com/chzyer/readline"
)

// LineReader supplies one line of user input per call. It returns io.EOF
// when input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ScannerReader reads lines from any io.Reader.
type ScannerReader struct {
	sc *bufio.Scanner
}

// NewScannerReader wraps r for line-at-a-time reads.
func NewScannerReader(r io.Reader) *ScannerReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &ScannerReader{sc: sc}
}

// ReadLine returns the next line without its line ending.
func (r *ScannerReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// TerminalReader reads lines with readline editing and optional history.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader opens a readline instance on stdin. historyFile may be empty.
func NewTerminalReader(historyFile string) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine treats Ctrl+C like end of input.
func (r *TerminalReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	return line, err
}

// Close restores the terminal and flushes history.
func (r *TerminalReader) Close() error {
	return r.rl.Close()
}
