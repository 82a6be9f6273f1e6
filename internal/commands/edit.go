package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"todosync/internal/exitcode"
	"todosync/internal/output"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
// Edits are kept in the local cache only; the remote store never sees them.
type EditCmd struct{}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return []string{"update"} }
func (c *EditCmd) Synopsis() string   { return "Replace a task's content locally" }
func (c *EditCmd) Usage() string      { return "todosync edit <id> <content...>" }
func (c *EditCmd) NeedsSession() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, rest, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := env.Session.BeginEdit(id); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v: %d\n", err, id)
		return exitcode.UserError
	}
	env.Session.SetInput(strings.Join(rest, " "))

	task, err := env.Session.CommitEdit(ctx)
	if err != nil {
		return report(env.ErrOut, err)
	}
	if !env.Config.Quiet {
		output.FormatTask(env.Out, task, false)
	}
	return exitcode.Success
}
