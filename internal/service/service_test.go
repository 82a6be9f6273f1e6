package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"todosync/internal/service"
)

func TestTaskID_Decode(t *testing.T) {
	tests := []struct {
		in      string
		want    service.TaskID
		wantErr bool
	}{
		{`7`, 7, false},
		{`"2995104339"`, 2995104339, false},
		{`"abc"`, 0, true},
		{`1.5`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id service.TaskID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got id %d", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("expected %d, got %d", tt.want, id)
			}
		})
	}
}

func TestTask_EncodesIDAsNumber(t *testing.T) {
	var task service.Task
	if err := json.Unmarshal([]byte(`{"id":"42","content":"x","project_id":"9"}`), &task); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"id":42,"task":"","done":false,"content":"x"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestParseTaskID(t *testing.T) {
	if id, err := service.ParseTaskID("12"); err != nil || id != 12 {
		t.Errorf("expected 12, got %d (%v)", id, err)
	}
	for _, bad := range []string{"", "0", "-1", "x1", "1e3"} {
		if _, err := service.ParseTaskID(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestRemote(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name   string
		status int
		err    error
		prefix string
	}{
		{"timeout", 0, fmt.Errorf("get: %w", context.DeadlineExceeded), "list: request timed out"},
		{"unauthorized", http.StatusUnauthorized, base, "list: token rejected (status 401)"},
		{"forbidden", http.StatusForbidden, base, "list: token rejected (status 403)"},
		{"not found", http.StatusNotFound, base, "list: not found"},
		{"other", http.StatusInternalServerError, base, "list: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Remote("list", tt.status, tt.err)

			var re *service.RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("expected RemoteError, got %T", err)
			}
			if re.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, re.Status)
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, err.Error())
			}
			if !errors.Is(err, tt.err) {
				t.Error("expected the cause to stay reachable")
			}
		})
	}
}

func TestRemote_Nil(t *testing.T) {
	if err := service.Remote("list", 200, nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
