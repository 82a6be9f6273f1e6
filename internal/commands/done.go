package commands

import (
	"context"
	"flag"
	"fmt"

	"todosync/internal/exitcode"
	"todosync/internal/output"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
// Completion is session-only, so outside the shell it lasts for this run.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task's completed mark" }
func (c *DoneCmd) Usage() string      { return "todosync done <id>" }
func (c *DoneCmd) NeedsSession() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, _, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	task, err := env.Session.ToggleComplete(id)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v: %d\n", err, id)
		return exitcode.UserError
	}
	output.FormatTask(env.Out, task, false)
	return exitcode.Success
}
