package task

import (
	"strings"
	"time"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is one unit of trackable work. Tasks are created and mutated only
// through a Store; ID and CreatedAt never change after creation.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusOptions returns the allowed status values in display order.
func StatusOptions() []string {
	return []string{string(StatusNew), string(StatusInProgress), string(StatusDone)}
}

// PriorityOptions returns the allowed priority values in display order.
func PriorityOptions() []string {
	return []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}
}

// ParseStatus matches s against the status set, case-insensitively.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusNew:
		return StatusNew, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusDone:
		return StatusDone, true
	}
	return "", false
}

// ParsePriority matches s against the priority set, case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityHigh:
		return PriorityHigh, true
	}
	return "", false
}

// DisplayOptions joins an option set into a line suitable for prompting.
func DisplayOptions(options []string) string {
	return strings.Join(options, ", ")
}
