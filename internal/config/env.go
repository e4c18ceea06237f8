package config

import "os"

// Environment variables override file values when set.
const (
	EnvDataFile  = "TASKMANAGER_DATA_FILE"
	EnvExportDir = "TASKMANAGER_EXPORT_DIR"
	EnvBackupDir = "TASKMANAGER_BACKUP_DIR"
)

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv(EnvBackupDir); v != "" {
		c.BackupDir = v
	}
}
