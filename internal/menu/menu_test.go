package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teamofeyy/TaskManager/internal/task"
)

func runScript(t *testing.T, store *task.Store, opts Options, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	m := New(store, opts, in, &out)
	require.NoError(t, m.Run())
	return out.String()
}

func TestMenu_CreateAndExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := task.NewStore(path)

	out := runScript(t, store, Options{},
		"1",
		"Buy milk",
		"2% at the store",
		"",
		"6",
	)

	assert.Contains(t, out, "Task added.")
	assert.Contains(t, out, "Tasks saved. Bye!")

	created, found := store.Get(1)
	require.True(t, found)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, task.PriorityMedium, created.Priority)

	// exit saved the store to disk
	reloaded := task.NewStore(path)
	assert.Equal(t, 1, reloaded.Len())
}

func TestMenu_CreateWithInvalidPriorityPrintsNotice(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	out := runScript(t, store, Options{},
		"1", "x", "y", "urgent",
		"6",
	)

	assert.Contains(t, out, `Notice: invalid priority "urgent", using "medium"`)
}

func TestMenu_EditUnknownID(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	out := runScript(t, store, Options{},
		"2", "42", "", "", "", "",
		"6",
	)

	assert.Contains(t, out, "Task 42 not found.")
}

func TestMenu_EditNonNumericID(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	out := runScript(t, store, Options{},
		"2", "abc",
		"6",
	)

	assert.Contains(t, out, "Invalid task id.")
}

func TestMenu_ListWithFilter(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	store.Create("first", "aa", "")
	store.Create("second", "bb", "high")
	store.Edit(2, task.Patch{Status: "in_progress"})

	out := runScript(t, store, Options{},
		"4", "in_progress", "",
		"6",
	)

	assert.Contains(t, out, "2 | second | bb | in_progress | high |")
	assert.NotContains(t, out, "1 | first")
}

func TestMenu_ListEmpty(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	out := runScript(t, store, Options{},
		"4", "", "",
		"6",
	)

	assert.Contains(t, out, "No tasks.")
}

func TestMenu_DeleteFlow(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	store.Create("doomed", "", "")

	out := runScript(t, store, Options{},
		"3", "1",
		"3", "1",
		"6",
	)

	assert.Contains(t, out, "Task deleted.")
	assert.Contains(t, out, "Task 1 not found.")
	assert.Equal(t, 0, store.Len())
}

func TestMenu_InvalidChoice(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	out := runScript(t, store, Options{},
		"9",
		"6",
	)

	assert.Contains(t, out, "Invalid choice, try again.")
}

func TestMenu_ExportWritesFile(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "exports")
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	store.Create("exported", "", "")

	out := runScript(t, store, Options{ExportDir: exportDir},
		"5", "csv",
		"6",
	)

	assert.Contains(t, out, "Exported to ")

	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".csv"))

	b, err := os.ReadFile(filepath.Join(exportDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(b), "exported")
}

func TestMenu_ExportICS(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "exports")
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	store.Create("calendar me", "", "")

	runScript(t, store, Options{ExportDir: exportDir},
		"5", "ics",
		"6",
	)

	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	b, err := os.ReadFile(filepath.Join(exportDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(b), "BEGIN:VTODO")
}

func TestMenu_ExportUnknownFormat(t *testing.T) {
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	out := runScript(t, store, Options{ExportDir: t.TempDir()},
		"5", "xlsx",
		"6",
	)

	assert.Contains(t, out, "Export failed:")
}
