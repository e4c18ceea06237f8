package task

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildCalendarICS(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	tasks := []Task{
		{
			ID:          1,
			Title:       "Buy milk",
			Description: "2% at the store",
			Status:      StatusInProgress,
			Priority:    PriorityHigh,
			CreatedAt:   time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Title:     "semi;colons, and commas",
			Status:    StatusDone,
			Priority:  PriorityLow,
			CreatedAt: now,
		},
	}

	ics := BuildCalendarICS(tasks, now)

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, ics, "UID:task-1@taskmanager")
	assert.Contains(t, ics, "SUMMARY:Buy milk")
	assert.Contains(t, ics, "DESCRIPTION:2% at the store")
	assert.Contains(t, ics, "STATUS:IN-PROCESS")
	assert.Contains(t, ics, "PRIORITY:1")
	assert.Contains(t, ics, "STATUS:COMPLETED")
	assert.Contains(t, ics, "PRIORITY:9")
	assert.Contains(t, ics, "SUMMARY:semi\\;colons\\, and commas")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VTODO"))
}

func TestBuildCalendarICS_Empty(t *testing.T) {
	ics := BuildCalendarICS(nil, time.Now())
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "END:VCALENDAR")
	assert.NotContains(t, ics, "VTODO")
}
