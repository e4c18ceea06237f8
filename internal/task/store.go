package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Notice reports a soft-corrected input value. It is informational, not an
// error: the operation that produced it still succeeded.
type Notice struct {
	Field string
	Given string
	Used  string
}

func (n Notice) String() string {
	return fmt.Sprintf("invalid %s %q, using %q", n.Field, n.Given, n.Used)
}

// Patch is a partial update. Empty fields leave the task unchanged.
type Patch struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

// Filter narrows List output. An empty or unrecognized value means no
// filtering on that field.
type Filter struct {
	Status   string
	Priority string
}

// Store owns the task collection and its persistence file. It is the sole
// mutator of tasks; a single process owns the file for the duration of a run.
type Store struct {
	path   string
	tasks  []Task
	nextID int
}

// NewStore opens the store backed by the file at path. A missing or
// unparsable file yields an empty store; construction never fails.
func NewStore(path string) *Store {
	s := &Store{path: path, nextID: 1}
	s.load()
	return s
}

// Create adds a task with the next sequential id. An invalid priority is
// replaced by medium and reported as a notice; an empty priority means the
// default and produces no notice.
func (s *Store) Create(title, description, priority string) (Task, []Notice) {
	var notices []Notice

	p := PriorityMedium
	if priority != "" {
		parsed, ok := ParsePriority(priority)
		if ok {
			p = parsed
		} else {
			notices = append(notices, Notice{Field: "priority", Given: priority, Used: string(PriorityMedium)})
		}
	}

	t := Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Status:      StatusNew,
		Priority:    p,
		// UTC keeps the portable form round-trippable to exact equality.
		CreatedAt: time.Now().UTC(),
	}
	s.tasks = append(s.tasks, t)
	s.nextID++
	return t, notices
}

// Edit applies p to the task with the given id. Invalid status or priority
// values keep the previous field value and are reported as notices. The
// returned bool is false when no task has that id; the store is unchanged.
func (s *Store) Edit(id int, p Patch) (Task, []Notice, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, nil, false
	}

	var notices []Notice
	t := &s.tasks[idx]

	if p.Title != "" {
		t.Title = p.Title
	}
	if p.Description != "" {
		t.Description = p.Description
	}
	if p.Status != "" {
		if st, ok := ParseStatus(p.Status); ok {
			t.Status = st
		} else {
			notices = append(notices, Notice{Field: "status", Given: p.Status, Used: string(t.Status)})
		}
	}
	if p.Priority != "" {
		if pr, ok := ParsePriority(p.Priority); ok {
			t.Priority = pr
		} else {
			notices = append(notices, Notice{Field: "priority", Given: p.Priority, Used: string(t.Priority)})
		}
	}
	return *t, notices, true
}

// Delete removes the task with the given id. It reports whether a task was
// actually removed.
func (s *Store) Delete(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return true
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, false
	}
	return s.tasks[idx], true
}

// Len returns the number of tasks held.
func (s *Store) Len() int {
	return len(s.tasks)
}

// List returns a fresh slice of tasks matching f, sorted ascending by
// creation time. The sort is stable: creation-time ties keep their relative
// order in the collection.
func (s *Store) List(f Filter) []Task {
	statusFilter, filterStatus := ParseStatus(f.Status)
	priorityFilter, filterPriority := ParsePriority(f.Priority)

	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filterStatus && t.Status != statusFilter {
			continue
		}
		if filterPriority && t.Priority != priorityFilter {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Save writes the whole collection to the data file as a single JSON array,
// replacing the previous contents. The write goes to a temp file first and
// is renamed into place, so a crash mid-write leaves the old file intact.
// In-memory state is unaffected by a failed save.
func (s *Store) Save() error {
	records := make([]Portable, 0, len(s.tasks))
	for _, t := range s.tasks {
		records = append(records, t.Portable())
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := writeFileAtomic(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// load reads the data file. Any failure, from a missing file to a single
// malformed record, resets the store to empty: the file is loaded in full
// or not at all.
func (s *Store) load() {
	s.tasks = nil
	s.nextID = 1

	b, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var records []Portable
	if err := json.Unmarshal(b, &records); err != nil {
		return
	}

	tasks := make([]Task, 0, len(records))
	maxID := 0
	for _, rec := range records {
		t, err := FromPortable(rec)
		if err != nil {
			return
		}
		tasks = append(tasks, t)
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	s.tasks = tasks
	s.nextID = maxID + 1
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
