package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Teamofeyy/TaskManager/internal/config"
	"github.com/Teamofeyy/TaskManager/internal/ops"
	"github.com/Teamofeyy/TaskManager/internal/task"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backup":
		if err := cmdBackup(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "backup failed:", err)
			os.Exit(1)
		}
	case "restore":
		if err := cmdRestore(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "restore failed:", err)
			os.Exit(1)
		}
	case "drill":
		if err := cmdDrill(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "drill failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", ".", "path to the tracker data directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		cfg, err := config.Load("taskmanager.yml")
		if err != nil {
			return err
		}
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join(cfg.BackupDir, "taskmanager-"+ts+".tar.gz")
	}

	if err := ops.BackupDataDir(*dataDir, *out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	return ops.RestoreDataDir(*archive, *target)
}

// cmdDrill backs up the data directory, restores the archive into a scratch
// directory and checks the restored tasks file still parses as a task list.
func cmdDrill(args []string) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	dataDir := fs.String("data-dir", ".", "path to the tracker data directory")
	dataFile := fs.String("data-file", "tasks.json", "tasks file name inside the data directory")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*workDir, 0o755); err != nil {
		return err
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	archive := filepath.Join(*workDir, "taskmanager-drill-"+ts+".tar.gz")
	restoreDir := filepath.Join(*workDir, "taskmanager-drill-restore-"+ts)

	if err := ops.BackupDataDir(*dataDir, archive); err != nil {
		return err
	}
	if err := ops.RestoreDataDir(archive, restoreDir); err != nil {
		return err
	}

	count, err := verifyTasksFile(filepath.Join(restoreDir, *dataFile))
	if err != nil {
		return err
	}

	fmt.Println("backup:", archive)
	fmt.Println("restored:", restoreDir)
	fmt.Println("tasks:", count)
	return nil
}

func verifyTasksFile(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var records []task.Portable
	if err := json.Unmarshal(b, &records); err != nil {
		return 0, fmt.Errorf("restored tasks file does not parse: %w", err)
	}
	for _, rec := range records {
		if _, err := task.FromPortable(rec); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  taskmanager-ops backup  --data-dir . --out backups/backup.tar.gz")
	fmt.Println("  taskmanager-ops restore --archive backups/backup.tar.gz --target-dir data-restored")
	fmt.Println("  taskmanager-ops drill   --data-dir . --work-dir /tmp")
}
