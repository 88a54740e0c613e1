package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IdeaDB represents a row of the ideas table.
// Tags and comments are stored as JSONB documents.
type IdeaDB struct {
	ID          uuid.UUID `json:"id" db:"id"`                   // Opaque idea identifier
	Title       string    `json:"title" db:"title"`             // Idea title
	Description string    `json:"description" db:"description"` // Free-form description
	Owner       string    `json:"owner" db:"owner"`             // Username of the owner, set once
	Tags        Tags      `json:"tags" db:"tags"`               // Labels attached at creation
	Votes       int       `json:"votes" db:"votes"`             // Vote counter
	Comments    Comments  `json:"comments" db:"comments"`       // Discussion thread
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// Comment is a single entry of an idea's discussion thread.
type Comment struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Tags is a JSONB-backed list of strings.
type Tags []string

// Value implements driver.Valuer. A nil slice is stored as an empty array.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	return scanJSON(src, (*[]string)(t))
}

// Comments is a JSONB-backed list of comments.
type Comments []Comment

// Value implements driver.Valuer. A nil slice is stored as an empty array.
func (c Comments) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Comment(c))
}

// Scan implements sql.Scanner.
func (c *Comments) Scan(src any) error {
	return scanJSON(src, (*[]Comment)(c))
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", src)
	}
}
