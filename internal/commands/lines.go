package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one line of user input at a time.
// ReadLine returns io.EOF when input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a reader that, on first use, picks a readline-backed
// reader when in is a terminal and a plain line scanner otherwise.
// Commands that never prompt never touch the terminal. historyFile may be empty.
func NewLineReader(in io.Reader, out io.Writer, historyFile string) LineReader {
	return &lazyReader{open: func() LineReader {
		return openLineReader(in, out, historyFile)
	}}
}

func openLineReader(in io.Reader, out io.Writer, historyFile string) LineReader {
	if f, ok := in.(*os.File); ok && readline.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "> ",
			HistoryFile: historyFile,
		})
		if err == nil {
			return &terminalReader{rl: rl}
		}
	}
	return NewPlainReader(in, out)
}

type lazyReader struct {
	open func() LineReader
	r    LineReader
}

func (l *lazyReader) ReadLine(prompt string) (string, error) {
	if l.r == nil {
		l.r = l.open()
	}
	return l.r.ReadLine(prompt)
}

func (l *lazyReader) Close() error {
	if l.r == nil {
		return nil
	}
	return l.r.Close()
}

type terminalReader struct {
	rl *readline.Instance
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}

// PlainReader reads newline-terminated lines and echoes prompts to out.
type PlainReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPlainReader creates a PlainReader. out may be nil to suppress prompts.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine implements LineReader.
func (r *PlainReader) ReadLine(prompt string) (string, error) {
	if r.out != nil && prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

// Close implements LineReader.
func (r *PlainReader) Close() error { return nil }
