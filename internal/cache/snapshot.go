package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	log "github.com/sirupsen/logrus"

	"todosync/internal/service"
)

const snapshotSchemaURL = "snapshot.schema.json"

// snapshotSchema describes a JSON array of Task-shaped records. Unknown keys are
// allowed so snapshots written from raw API payloads still load.
const snapshotSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "content"],
    "properties": {
      "id": {
        "anyOf": [
          {"type": "integer", "minimum": 1},
          {"type": "string", "pattern": "^[1-9][0-9]*$"}
        ]
      },
      "content": {"type": "string"},
      "done": {"type": "boolean"},
      "task": {"type": ["string", "null"]}
    }
  }
}`

var schema = jsonschema.MustCompileString(snapshotSchemaURL, snapshotSchema)

// Cache encodes, validates and persists task snapshots in a Slot.
type Cache struct {
	slot   Slot
	logger *log.Logger
}

// New creates a Cache over slot.
func New(slot Slot, logger *log.Logger) *Cache {
	return &Cache{slot: slot, logger: logger}
}

// Load returns the cached task list. The second result is false when there is
// no usable snapshot: absent, unreadable, unparsable or schema-invalid
// snapshots are all treated as "no cache".
func (c *Cache) Load(ctx context.Context) ([]service.Task, bool) {
	data, err := c.slot.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			c.logger.WithError(err).Warn("cache read failed")
		}
		return nil, false
	}

	tasks, err := Decode(data)
	if err != nil {
		c.logger.WithError(err).Warn("ignoring malformed cache snapshot")
		return nil, false
	}
	return tasks, true
}

// Save replaces the snapshot with tasks.
func (c *Cache) Save(ctx context.Context, tasks []service.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}
	return c.slot.Save(ctx, data)
}

// Encode serialises tasks as a JSON array. A nil list encodes as [].
func Encode(tasks []service.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []service.Task{}
	}
	data, err := sonic.ConfigStd.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses and validates a snapshot.
func Decode(data []byte) ([]service.Task, error) {
	var doc any
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	var tasks []service.Task
	if err := sonic.ConfigStd.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return Dedupe(tasks), nil
}
