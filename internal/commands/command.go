// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	log "github.com/sirupsen/logrus"

	"todosync/internal/config"
	"todosync/internal/session"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsSession returns true if the command works on Session State.
	// Commands like help, version, login, logout return false.
	NeedsSession() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with positional args and returns the exit code.
	Run(ctx context.Context, env *Env, args []string) int
}

// Env is what a command runs against.
type Env struct {
	// Config is always set.
	Config *config.Config

	// Session is nil unless NeedsSession returns true. When set it has
	// already been hydrated; HydrateErr holds the remote failure, if any,
	// in which case the session carries the cached list.
	Session    *session.Session
	HydrateErr error

	// Lines reads user input for confirmations and the shell.
	Lines LineReader

	Out    io.Writer
	ErrOut io.Writer
	Log    *log.Logger
}
