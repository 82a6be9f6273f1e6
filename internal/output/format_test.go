package output_test

import (
	"bytes"
	"testing"

	"todosync/internal/output"
	"todosync/internal/service"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name    string
		task    service.Task
		editing bool
		want    string
	}{
		{"open", service.Task{ID: 1, Content: "buy milk"}, false, "[ ] Task 1  buy milk\n"},
		{"done", service.Task{ID: 2, Content: "walk dog", Done: true}, false, "[x] Task 2  walk dog\n"},
		{"editing", service.Task{ID: 3, Content: "draft"}, true, "[ ] Task 3  draft (editing)\n"},
		{"empty", service.Task{ID: 4}, false, "[ ] Task 4  (untitled)\n"},
		{"newlines", service.Task{ID: 5, Content: "a\r\nb"}, false, "[ ] Task 5  a  b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.FormatTask(&buf, tt.task, tt.editing)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatTasks(t *testing.T) {
	tasks := []service.Task{{ID: 1, Content: "a"}, {ID: 2, Content: "b"}}
	editing := service.TaskID(2)

	var buf bytes.Buffer
	output.FormatTasks(&buf, tasks, &editing, true)
	if want := "[ ] Task 1  a\n[ ] Task 2  b (editing)\n"; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}

	buf.Reset()
	output.FormatTasks(&buf, nil, nil, true)
	if buf.String() != output.EmptyList+"\n" {
		t.Errorf("expected empty notice, got %q", buf.String())
	}

	buf.Reset()
	output.FormatTasks(&buf, nil, nil, false)
	if buf.String() != "" {
		t.Errorf("expected nothing, got %q", buf.String())
	}
}
