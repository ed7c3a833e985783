package config

import (
	"path/filepath"
)

const (
	// SyntheticConstructID is the NCBI taxon ID of "synthetic construct",
	// a safe harbour for custom sequences.
	SyntheticConstructID = 32630
)

var (
	// AppName is used in generating file system paths.
	AppName = "kgraft"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/kgraft by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/kgraft/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/kgraft/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
