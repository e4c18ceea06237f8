package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the tracker. All fields are optional
// in the file; missing values fall back to defaults.
type Config struct {
	DataFile  string `yaml:"data_file" json:"data_file"`
	ExportDir string `yaml:"export_dir" json:"export_dir"`
	BackupDir string `yaml:"backup_dir" json:"backup_dir"`
}

func Default() Config {
	return Config{
		DataFile:  "tasks.json",
		ExportDir: "exports",
		BackupDir: "backups",
	}
}

func (c *Config) ApplyDefaults() {
	d := Default()
	if c.DataFile == "" {
		c.DataFile = d.DataFile
	}
	if c.ExportDir == "" {
		c.ExportDir = d.ExportDir
	}
	if c.BackupDir == "" {
		c.BackupDir = d.BackupDir
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults apply. Environment overrides are applied last.
func Load(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
	} else if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	c.ApplyDefaults()
	c.applyEnv()
	return c, nil
}
