// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TaskID is the store-assigned task identifier.
// Decodes from a JSON number or a quoted decimal string; always encodes as a number.
type TaskID int64

func (id TaskID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// MarshalJSON implements json.Marshaler.
func (id TaskID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %s", data)
	}
	*id = TaskID(n)
	return nil
}

// ParseTaskID parses a decimal task id.
func ParseTaskID(s string) (TaskID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return TaskID(n), nil
}

// Task represents a single task item.
type Task struct {
	ID      TaskID `json:"id"`
	Task    string `json:"task"` // legacy, never populated
	Done    bool   `json:"done"` // local only, never sent to the remote store
	Content string `json:"content"`
}

var _ json.Unmarshaler = (*TaskID)(nil)
