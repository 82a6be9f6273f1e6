package commands_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"todosync/internal/commands"
	"todosync/internal/service"
	"todosync/internal/session"
)

func TestPlainReader(t *testing.T) {
	var prompts bytes.Buffer
	r := commands.NewPlainReader(strings.NewReader("first\r\nsecond\n"), &prompts)

	for _, want := range []string{"first", "second"} {
		got, err := r.ReadLine("> ")
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if _, err := r.ReadLine("> "); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if prompts.String() != "> > > " {
		t.Errorf("unexpected prompts %q", prompts.String())
	}
}

func TestLinePresenter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		yes   bool
		want  bool
	}{
		{"y\n", false, true},
		{" YES \n", false, true},
		{"n\n", false, false},
		{"sure\n", false, false},
		{"", false, false},
		{"", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var prompts bytes.Buffer
			lines := commands.NewPlainReader(strings.NewReader(tt.input), &prompts)
			p := commands.NewLinePresenter(lines, io.Discard, tt.yes, false)

			got, err := p.Confirm(context.Background(), "Delete task 1?")
			if err != nil {
				t.Fatalf("confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if !tt.yes && prompts.String() != "Delete task 1? [y/N] " {
				t.Errorf("unexpected prompt %q", prompts.String())
			}
		})
	}
}

func TestLinePresenter_Notify(t *testing.T) {
	notice := session.Notice{Kind: session.NoticeAdded, Task: service.Task{ID: 3}, Message: "task 3 added"}

	var out bytes.Buffer
	commands.NewLinePresenter(nil, &out, false, false).Notify(context.Background(), notice)
	if out.String() != "task 3 added\n" {
		t.Errorf("unexpected notice %q", out.String())
	}

	out.Reset()
	commands.NewLinePresenter(nil, &out, false, true).Notify(context.Background(), notice)
	if out.String() != "" {
		t.Errorf("quiet presenter printed %q", out.String())
	}
}
