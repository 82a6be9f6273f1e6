// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todosync/internal/service"
)

const (
	// EmptyList is printed when no task matches.
	EmptyList = "no tasks found"

	editingSuffix = " (editing)"
)

// FormatTask formats one task line.
// Format: "[ ] Task {ID}  {CONTENT}\n", with "[x]" for completed tasks and a
// trailing " (editing)" for the task under edit.
func FormatTask(w io.Writer, task service.Task, editing bool) {
	box := "[ ]"
	if task.Done {
		box = "[x]"
	}
	line := fmt.Sprintf("%s Task %d  %s", box, task.ID, normalizeContent(task.Content))
	if editing {
		line += editingSuffix
	}
	fmt.Fprintln(w, line)
}

// FormatTasks writes every task in order. editing may be nil.
// Nothing is written for an empty slice unless emptyNotice is set.
func FormatTasks(w io.Writer, tasks []service.Task, editing *service.TaskID, emptyNotice bool) {
	if len(tasks) == 0 {
		if emptyNotice {
			fmt.Fprintln(w, EmptyList)
		}
		return
	}
	for _, t := range tasks {
		FormatTask(w, t, editing != nil && *editing == t.ID)
	}
}

// normalizeContent normalizes task content for display.
// - Empty or whitespace-only content becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r", " ")
	content = strings.ReplaceAll(content, "\n", " ")

	if strings.TrimSpace(content) == "" {
		return "(untitled)"
	}
	return content
}
