package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"todosync/internal/session"
)

// LinePresenter implements session.Presenter on a LineReader.
type LinePresenter struct {
	lines     LineReader
	out       io.Writer
	assumeYes bool
	quiet     bool
}

// NewLinePresenter creates a presenter. With assumeYes every confirmation is
// accepted without reading input; with quiet notices are not printed.
func NewLinePresenter(lines LineReader, out io.Writer, assumeYes, quiet bool) *LinePresenter {
	return &LinePresenter{lines: lines, out: out, assumeYes: assumeYes, quiet: quiet}
}

// Confirm asks prompt and accepts "y" or "yes". End of input declines.
func (p *LinePresenter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	answer, err := p.lines.ReadLine(prompt + " [y/N] ")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Notify prints the notice message.
func (p *LinePresenter) Notify(ctx context.Context, n session.Notice) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, n.Message)
}
