package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"todosync/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "todosync add <content...>" }
func (c *AddCmd) NeedsSession() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	content := strings.Join(args, " ")
	if strings.TrimSpace(content) == "" {
		fmt.Fprintln(env.ErrOut, "error: content required")
		return exitcode.UserError
	}

	env.Session.SetInput(content)
	if _, err := env.Session.Add(ctx); err != nil {
		return report(env.ErrOut, err)
	}
	return exitcode.Success
}
