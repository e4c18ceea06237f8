package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Teamofeyy/TaskManager/internal/report"
	"github.com/Teamofeyy/TaskManager/internal/task"
)

// Options configures the interactive loop.
type Options struct {
	// ExportDir is where the export choice writes its files.
	ExportDir string
}

// Menu drives a task store through a numbered text menu. It reads choices
// and field values line by line, so it works the same over a terminal or a
// scripted reader in tests.
type Menu struct {
	store *task.Store
	opts  Options
	in    *bufio.Scanner
	out   io.Writer

	now func() time.Time
}

func New(store *task.Store, opts Options, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: store,
		opts:  opts,
		in:    bufio.NewScanner(in),
		out:   out,
		now:   time.Now,
	}
}

// Run loops until the exit choice is taken or input ends. The store is
// saved on exit; a failed save keeps the loop (and the unsaved state) alive
// so the user can retry.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Task manager:")
		fmt.Fprintln(m.out, "1. Create task")
		fmt.Fprintln(m.out, "2. Edit task")
		fmt.Fprintln(m.out, "3. Delete task")
		fmt.Fprintln(m.out, "4. List tasks")
		fmt.Fprintln(m.out, "5. Export tasks")
		fmt.Fprintln(m.out, "6. Save and exit")

		choice, ok := m.prompt("Choose an action: ")
		if !ok {
			return m.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.createTask()
		case "2":
			m.editTask()
		case "3":
			m.deleteTask()
		case "4":
			m.listTasks()
		case "5":
			m.exportTasks()
		case "6":
			if err := m.store.Save(); err != nil {
				fmt.Fprintf(m.out, "Saving failed: %v\n", err)
				continue
			}
			fmt.Fprintln(m.out, "Tasks saved. Bye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, try again.")
		}
	}
}

func (m *Menu) createTask() {
	title, ok := m.prompt("Task title: ")
	if !ok {
		return
	}
	description, ok := m.prompt("Task description: ")
	if !ok {
		return
	}
	fmt.Fprintf(m.out, "Available priorities: %s\n", task.DisplayOptions(task.PriorityOptions()))
	priority, ok := m.prompt("Priority (default 'medium'): ")
	if !ok {
		return
	}

	_, notices := m.store.Create(title, description, priority)
	m.printNotices(notices)
	fmt.Fprintln(m.out, "Task added.")
}

func (m *Menu) editTask() {
	id, ok := m.promptID("Task ID: ")
	if !ok {
		return
	}
	title, ok := m.prompt("New title (Enter to skip): ")
	if !ok {
		return
	}
	description, ok := m.prompt("New description (Enter to skip): ")
	if !ok {
		return
	}
	fmt.Fprintf(m.out, "Available statuses: %s\n", task.DisplayOptions(task.StatusOptions()))
	status, ok := m.prompt("New status (Enter to skip): ")
	if !ok {
		return
	}
	fmt.Fprintf(m.out, "Available priorities: %s\n", task.DisplayOptions(task.PriorityOptions()))
	priority, ok := m.prompt("New priority (Enter to skip): ")
	if !ok {
		return
	}

	_, notices, found := m.store.Edit(id, task.Patch{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
	})
	if !found {
		fmt.Fprintf(m.out, "Task %d not found.\n", id)
		return
	}
	m.printNotices(notices)
	fmt.Fprintln(m.out, "Task updated.")
}

func (m *Menu) deleteTask() {
	id, ok := m.promptID("Task ID to delete: ")
	if !ok {
		return
	}
	if !m.store.Delete(id) {
		fmt.Fprintf(m.out, "Task %d not found.\n", id)
		return
	}
	fmt.Fprintln(m.out, "Task deleted.")
}

func (m *Menu) listTasks() {
	fmt.Fprintf(m.out, "Statuses to filter by: %s\n", task.DisplayOptions(task.StatusOptions()))
	status, ok := m.prompt("Status filter (Enter to skip): ")
	if !ok {
		return
	}
	fmt.Fprintf(m.out, "Priorities to filter by: %s\n", task.DisplayOptions(task.PriorityOptions()))
	priority, ok := m.prompt("Priority filter (Enter to skip): ")
	if !ok {
		return
	}

	tasks := m.store.List(task.Filter{Status: status, Priority: priority})
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "No tasks.")
		return
	}
	for _, t := range tasks {
		fmt.Fprintf(m.out, "%d | %s | %s | %s | %s | %s\n",
			t.ID, t.Title, t.Description, t.Status, t.Priority, t.CreatedAt.Local().Format("15:04"))
	}
}

func (m *Menu) exportTasks() {
	fmt.Fprintf(m.out, "Available formats: %s\n", task.DisplayOptions(append(report.Formats(), "ics")))
	format, ok := m.prompt("Format: ")
	if !ok {
		return
	}
	format = strings.ToLower(strings.TrimSpace(format))

	tasks := m.store.List(task.Filter{})
	var b []byte
	switch format {
	case "ics":
		b = []byte(task.BuildCalendarICS(tasks, m.now()))
	default:
		var err error
		b, err = report.Export(tasks, format)
		if err != nil {
			fmt.Fprintf(m.out, "Export failed: %v\n", err)
			return
		}
	}

	if err := os.MkdirAll(m.opts.ExportDir, 0o755); err != nil {
		fmt.Fprintf(m.out, "Export failed: %v\n", err)
		return
	}
	name := "tasks-" + m.now().UTC().Format("20060102T150405Z") + "." + format
	path := filepath.Join(m.opts.ExportDir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		fmt.Fprintf(m.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Exported to %s\n", path)
}

func (m *Menu) printNotices(notices []task.Notice) {
	for _, n := range notices {
		fmt.Fprintf(m.out, "Notice: %s\n", n)
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) promptID(label string) (int, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid task id.")
		return 0, false
	}
	return id, true
}
