package commands

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"todosync/internal/config"
	"todosync/internal/exitcode"
	"todosync/internal/service"
	"todosync/internal/session"
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	var re *service.RemoteError
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, config.ErrNoCredential),
		errors.Is(err, config.ErrNoOAuthClient),
		errors.Is(err, config.ErrNotLoggedIn):
		return exitcode.AuthError
	case errors.As(err, &re):
		if re.Status == http.StatusUnauthorized || re.Status == http.StatusForbidden {
			return exitcode.AuthError
		}
		return exitcode.BackendError
	case errors.Is(err, session.ErrEmptyInput),
		errors.Is(err, session.ErrEditing),
		errors.Is(err, session.ErrNotEditing),
		errors.Is(err, session.ErrTaskNotFound),
		errors.Is(err, session.ErrInFlight):
		return exitcode.UserError
	}
	return exitcode.BackendError
}

// report prints err and returns its exit code.
// Remote failures are only mapped: the session has already logged them.
func report(errOut io.Writer, err error) int {
	code := ExitCode(err)
	if isRemote(err) {
		return code
	}
	switch code {
	case exitcode.AuthError:
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
	case exitcode.BackendError:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return code
}

func isRemote(err error) bool {
	var re *service.RemoteError
	return errors.As(err, &re)
}
