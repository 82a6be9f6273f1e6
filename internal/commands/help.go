package commands

import (
	"context"
	"flag"
	"fmt"

	"todosync/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todosync help" }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprint(env.Out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todosync                                   List tasks
  todosync list [common flags] [--search <text>]
  todosync add [common flags] <content...>
  todosync edit [common flags] <id> <content...>
  todosync rm [common flags] <id>
  todosync done [common flags] <id>
  todosync shell [common flags]
  todosync login [common flags]
  todosync logout [common flags]
  todosync help
  todosync version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --yes            Answer yes to confirmations
`
