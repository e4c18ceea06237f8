package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Teamofeyy/TaskManager/internal/task"
)

// Formats lists the supported export formats.
func Formats() []string {
	return []string{"json", "csv", "pdf"}
}

// Export renders tasks in the given format. Tasks are rendered in the order
// given, so callers pass the already filtered and sorted list.
func Export(tasks []task.Task, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		records := make([]task.Portable, 0, len(tasks))
		for _, t := range tasks {
			records = append(records, t.Portable())
		}
		return json.MarshalIndent(records, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "description", "status", "priority", "created_at"})
		for _, t := range tasks {
			_ = w.Write([]string{
				fmt.Sprint(t.ID),
				t.Title,
				t.Description,
				string(t.Status),
				string(t.Priority),
				t.CreatedAt.Format(time.RFC3339Nano),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		return exportPDF(tasks)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func exportPDF(tasks []task.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	for _, t := range tasks {
		line := fmt.Sprintf("#%d %s | %s | %s | %s",
			t.ID, t.Title, t.Status, t.Priority, t.CreatedAt.Format("2006-01-02 15:04"))
		pdf.MultiCell(0, 6, line, "0", "L", false)
		if t.Description != "" {
			pdf.MultiCell(0, 5, "    "+t.Description, "0", "L", false)
		}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
