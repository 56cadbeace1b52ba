package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONMap is an opaque key/value document persisted as a JSON TEXT column.
// The backend attaches no meaning to its contents.
type JSONMap map[string]any

// Value implements driver.Valuer. A nil map is stored as "{}" so reads
// always round-trip to an empty object rather than null.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = JSONMap{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan json column: unsupported type %T", src)
	}
	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Workflow is a named node/edge graph owned by exactly one user. Every
// read and write is scoped by (id, owner_id); a workflow is invisible to
// anyone but its owner.
type Workflow struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Nodes       JSONMap   `json:"nodes"`
	Edges       JSONMap   `json:"edges"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	OwnerID     int64     `json:"owner_id"`
}

// WorkflowUpdate is an allow-listed partial update. Nil fields are left
// untouched. Ownership and timestamps are deliberately not expressible
// here, so a caller can never overwrite them.
type WorkflowUpdate struct {
	Name        *string
	Description *string
	Nodes       JSONMap
	Edges       JSONMap
}

// Empty reports whether the update would change nothing.
func (u WorkflowUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Nodes == nil && u.Edges == nil
}
