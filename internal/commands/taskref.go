package commands

import (
	"errors"
	"fmt"

	"todosync/internal/service"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses the task ID from the first positional arg.
// Returns the ID and the remaining args.
func ParseTaskRef(args []string) (service.TaskID, []string, error) {
	if len(args) == 0 {
		return 0, nil, ErrTaskRefRequired
	}
	id, err := service.ParseTaskID(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return id, args[1:], nil
}
