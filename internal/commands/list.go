package commands

import (
	"context"
	"flag"

	"todosync/internal/exitcode"
	"todosync/internal/output"
	"todosync/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. It is also the default command.
type ListCmd struct {
	search string
}

// SetSearch sets the search query (for testing).
func (c *ListCmd) SetSearch(q string) {
	c.search = q
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "todosync list [--search <text>]" }
func (c *ListCmd) NeedsSession() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	env.Session.SetSearch(c.search)
	printVisible(env)

	// The cached list has been printed; the failed fetch still decides the exit code.
	if env.HydrateErr != nil {
		return report(env.ErrOut, env.HydrateErr)
	}
	return exitcode.Success
}

// printVisible prints the filtered task list with the edit marker.
func printVisible(env *Env) {
	var editing *service.TaskID
	if id, ok := env.Session.Editing(); ok {
		editing = &id
	}
	output.FormatTasks(env.Out, env.Session.Visible(), editing, !env.Config.Quiet)
}
