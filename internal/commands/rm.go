package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"todosync/internal/exitcode"
	"todosync/internal/session"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "todosync rm [--yes] <id>" }
func (c *RmCmd) NeedsSession() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, _, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	err = env.Session.Delete(ctx, id)
	if errors.Is(err, session.ErrDeclined) {
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "cancelled")
		}
		return exitcode.Success
	}
	if err != nil {
		return report(env.ErrOut, err)
	}
	return exitcode.Success
}
