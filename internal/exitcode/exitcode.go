// Package exitcode defines the process exit codes of the CLI.
package exitcode

const (
	// Success indicates successful completion, including a declined delete.
	Success = 0

	// UserError indicates bad arguments or an unknown task.
	UserError = 1

	// AuthError indicates a credential or configuration problem.
	AuthError = 2

	// BackendError indicates a failed remote call or other runtime failure.
	BackendError = 3
)
