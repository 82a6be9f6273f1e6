package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todosync/internal/exitcode"
	"todosync/internal/output"
	"todosync/internal/service"
	"todosync/internal/session"
)

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements the interactive shell. Session State lives for the
// whole shell, so search, input, edits and completion marks persist between
// lines.
type ShellCmd struct{}

func (c *ShellCmd) Name() string       { return "shell" }
func (c *ShellCmd) Aliases() []string  { return []string{"sh"} }
func (c *ShellCmd) Synopsis() string   { return "Interactive session" }
func (c *ShellCmd) Usage() string      { return "todosync shell" }
func (c *ShellCmd) NeedsSession() bool { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

type shellVerb func(ctx context.Context, env *Env, arg string) error

var shellVerbs = map[string]shellVerb{
	"list":   shellList,
	"ls":     shellList,
	"search": shellSearch,
	"type":   shellType,
	"add":    shellAdd,
	"edit":   shellEdit,
	"update": shellUpdate,
	"cancel": shellCancel,
	"done":   shellDone,
	"rm":     shellRm,
	"help":   shellHelp,
	"quit":   func(context.Context, *Env, string) error { return errQuit },
	"exit":   func(context.Context, *Env, string) error { return errQuit },
}

func (c *ShellCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if env.HydrateErr != nil {
		fmt.Fprintln(env.ErrOut, "warning: showing cached tasks")
	}
	printVisible(env)

	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}
		line, err := env.Lines.ReadLine(shellPrompt(env.Session))
		if errors.Is(err, io.EOF) {
			return exitcode.Success
		}
		if err != nil {
			fmt.Fprintf(env.ErrOut, "error: %v\n", err)
			return exitcode.UserError
		}

		verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		if verb == "" {
			continue
		}
		fn, ok := shellVerbs[verb]
		if !ok {
			fmt.Fprintf(env.ErrOut, "error: unknown command: %s\n", verb)
			continue
		}

		err = fn(ctx, env, strings.TrimSpace(arg))
		if errors.Is(err, errQuit) {
			return exitcode.Success
		}
		if err != nil && !isRemote(err) {
			fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		}
	}
}

func shellPrompt(s *session.Session) string {
	if id, ok := s.Editing(); ok {
		return fmt.Sprintf("todosync (editing %d)> ", id)
	}
	return "todosync> "
}

func shellList(ctx context.Context, env *Env, arg string) error {
	printVisible(env)
	return nil
}

func shellSearch(ctx context.Context, env *Env, arg string) error {
	env.Session.SetSearch(arg)
	printVisible(env)
	return nil
}

func shellType(ctx context.Context, env *Env, arg string) error {
	env.Session.SetInput(arg)
	return nil
}

func shellAdd(ctx context.Context, env *Env, arg string) error {
	if arg != "" {
		if _, editing := env.Session.Editing(); !editing {
			env.Session.SetInput(arg)
		}
	}
	_, err := env.Session.Add(ctx)
	return err
}

func shellEdit(ctx context.Context, env *Env, arg string) error {
	id, _, err := ParseTaskRef(strings.Fields(arg))
	if err != nil {
		return err
	}
	if err := env.Session.BeginEdit(id); err != nil {
		return fmt.Errorf("%w: %d", err, id)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "editing task %d: %s\n", id, env.Session.Input())
	}
	return nil
}

func shellUpdate(ctx context.Context, env *Env, arg string) error {
	if arg != "" {
		env.Session.SetInput(arg)
	}
	task, err := env.Session.CommitEdit(ctx)
	if err != nil {
		return err
	}
	if !env.Config.Quiet {
		output.FormatTask(env.Out, task, false)
	}
	return nil
}

func shellCancel(ctx context.Context, env *Env, arg string) error {
	env.Session.CancelEdit()
	return nil
}

func shellDone(ctx context.Context, env *Env, arg string) error {
	id, _, err := ParseTaskRef(strings.Fields(arg))
	if err != nil {
		return err
	}
	task, err := env.Session.ToggleComplete(id)
	if err != nil {
		return fmt.Errorf("%w: %d", err, id)
	}
	output.FormatTask(env.Out, task, isEditing(env.Session, task.ID))
	return nil
}

func shellRm(ctx context.Context, env *Env, arg string) error {
	id, _, err := ParseTaskRef(strings.Fields(arg))
	if err != nil {
		return err
	}
	err = env.Session.Delete(ctx, id)
	if errors.Is(err, session.ErrDeclined) {
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "cancelled")
		}
		return nil
	}
	return err
}

func shellHelp(ctx context.Context, env *Env, arg string) error {
	fmt.Fprint(env.Out, shellHelpText)
	return nil
}

func isEditing(s *session.Session, id service.TaskID) bool {
	editing, ok := s.Editing()
	return ok && editing == id
}

const shellHelpText = `Commands:
  list              Show tasks matching the search
  search [text]     Set the search filter (empty clears it)
  type <text>       Set the input field
  add [text]        Create a task from the input field
  edit <id>         Load a task into the input field for editing
  update [text]     Save the edit (local only)
  cancel            Abandon the edit
  done <id>         Toggle the completed mark
  rm <id>           Delete a task
  help              Show this help
  quit              Leave the shell
`
