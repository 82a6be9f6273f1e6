package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"todosync/internal/cache"
	"todosync/internal/commands"
	"todosync/internal/config"
	"todosync/internal/exitcode"
	"todosync/internal/logging"
	"todosync/internal/service"
	"todosync/internal/session"
)

// ServiceFactory creates the Remote Task Store client from config.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// SlotFactory creates the Local Cache slot from config.
// A slot that implements io.Closer is closed when the command returns.
type SlotFactory func(cfg *config.Config) (cache.Slot, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	services ServiceFactory
	slots    SlotFactory
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher(registry *commands.Registry, services ServiceFactory, slots SlotFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		services: services,
		slots:    slots,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// in supplies confirmations and shell input. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No command, or flags only: list.
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return d.dispatch(ctx, "list", args, in, out, errOut)
	}
	return d.dispatch(ctx, args[0], args[1:], in, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var configDir string
	var quiet, debug, yes bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.BoolVar(&yes, "yes", false, "")
	fs.BoolVar(&yes, "y", false, "")
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %s\n", err)
		return exitcode.AuthError
	}
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = cfg.Debug || debug
	cfg.AssumeYes = cfg.AssumeYes || yes

	logger := logging.New(errOut, cfg.Debug, cfg.Quiet)
	lines := commands.NewLineReader(in, errOut, filepath.Join(cfg.Dir, "history"))
	defer lines.Close()

	env := &commands.Env{
		Config: cfg,
		Lines:  lines,
		Out:    out,
		ErrOut: errOut,
		Log:    logger,
	}
	if !cmd.NeedsSession() {
		return cmd.Run(ctx, env, positional)
	}

	if d.services == nil || d.slots == nil {
		fmt.Fprintln(errOut, "error: no backend configured")
		return exitcode.AuthError
	}
	svc, err := d.services(ctx, cfg)
	if err != nil {
		if isAuthError(err) {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}
	slot, err := d.slots(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: cache error: %s\n", err)
		return exitcode.AuthError
	}
	if c, ok := slot.(io.Closer); ok {
		defer c.Close()
	}

	presenter := commands.NewLinePresenter(lines, out, cfg.AssumeYes, cfg.Quiet)
	env.Session = session.New(svc, cache.New(slot, logger), presenter, logger)
	env.HydrateErr = env.Session.Hydrate(ctx)

	logger.WithFields(map[string]any{
		"command": cmd.Name(),
		"backend": cfg.Backend,
		"cache":   cfg.Cache,
	}).Debug("dispatching")
	return cmd.Run(ctx, env, positional)
}

// isAuthError reports whether a backend construction error is about credentials.
func isAuthError(err error) bool {
	return errors.Is(err, config.ErrNoCredential) ||
		errors.Is(err, config.ErrNoOAuthClient) ||
		errors.Is(err, config.ErrNotLoggedIn)
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()
	switch {
	case strings.HasPrefix(errStr, "flag needs an argument:"):
		return errStr
	case strings.HasPrefix(errStr, "flag provided but not defined: "):
		return "unknown flag: " + strings.TrimPrefix(errStr, "flag provided but not defined: ")
	}
	return errStr
}
