package task

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedRecord means a persisted task record is missing required
// fields or carries an unparseable timestamp.
var ErrMalformedRecord = errors.New("malformed task record")

// Portable is the flat representation of a Task written to the data file.
// CreatedAt is an RFC 3339 timestamp string.
type Portable struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"created_at"`
}

// Portable converts t to its on-disk form.
func (t Task) Portable() Portable {
	return Portable{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
	}
}

// FromPortable reconstructs a Task from its on-disk form.
// Status and priority are taken as stored; they are validated on the way
// in, not on the way out.
func FromPortable(p Portable) (Task, error) {
	if p.ID < 1 {
		return Task{}, fmt.Errorf("%w: id %d", ErrMalformedRecord, p.ID)
	}
	if p.Status == "" || p.Priority == "" {
		return Task{}, fmt.Errorf("%w: id %d has empty status or priority", ErrMalformedRecord, p.ID)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, p.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("%w: created_at %q", ErrMalformedRecord, p.CreatedAt)
	}
	return Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      Status(p.Status),
		Priority:    Priority(p.Priority),
		CreatedAt:   createdAt,
	}, nil
}
