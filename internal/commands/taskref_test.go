package commands

import (
	"errors"
	"reflect"
	"testing"

	"todosync/internal/service"
)

func TestParseTaskRef(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    service.TaskID
		rest    []string
		wantErr string
	}{
		{name: "numeric", args: []string{"5"}, want: 5, rest: []string{}},
		{name: "large", args: []string{"2995104339"}, want: 2995104339, rest: []string{}},
		{name: "with content", args: []string{"3", "new", "text"}, want: 3, rest: []string{"new", "text"}},
		{name: "zero", args: []string{"0"}, wantErr: "invalid task reference: 0"},
		{name: "negative", args: []string{"-2"}, wantErr: "invalid task reference: -2"},
		{name: "letter", args: []string{"a1"}, wantErr: "invalid task reference: a1"},
		{name: "label", args: []string{"Task"}, wantErr: "invalid task reference: Task"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, rest, err := ParseTaskRef(tt.args)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("expected error %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("expected id %d, got %d", tt.want, id)
			}
			if !reflect.DeepEqual(rest, tt.rest) {
				t.Errorf("expected rest %q, got %q", tt.rest, rest)
			}
		})
	}
}

func TestParseTaskRef_NoArgs(t *testing.T) {
	if _, _, err := ParseTaskRef(nil); !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}
