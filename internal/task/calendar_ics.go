package task

import (
	"fmt"
	"strings"
	"time"
)

const icsTimestampLayout = "20060102T150405Z"

// BuildCalendarICS renders tasks as an iCalendar document of VTODO entries,
// one per task, so the list can be imported into a calendar client.
func BuildCalendarICS(tasks []Task, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//TaskManager//Task Export//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for _, t := range tasks {
		summary := strings.TrimSpace(t.Title)
		if summary == "" {
			summary = fmt.Sprintf("Task %d", t.ID)
		}
		lines = append(lines,
			"BEGIN:VTODO",
			fmt.Sprintf("UID:task-%d@taskmanager", t.ID),
			"DTSTAMP:"+now.UTC().Format(icsTimestampLayout),
			"CREATED:"+t.CreatedAt.UTC().Format(icsTimestampLayout),
			"SUMMARY:"+escapeICSText(summary),
			"STATUS:"+icsStatus(t.Status),
			fmt.Sprintf("PRIORITY:%d", icsPriority(t.Priority)),
		)
		if desc := strings.TrimSpace(t.Description); desc != "" {
			lines = append(lines, "DESCRIPTION:"+escapeICSText(desc))
		}
		lines = append(lines, "END:VTODO")
	}

	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

func icsStatus(s Status) string {
	switch s {
	case StatusInProgress:
		return "IN-PROCESS"
	case StatusDone:
		return "COMPLETED"
	default:
		return "NEEDS-ACTION"
	}
}

// icsPriority maps to RFC 5545 priority: 1 is highest, 9 lowest, 5 medium.
func icsPriority(p Priority) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityLow:
		return 9
	default:
		return 5
	}
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
