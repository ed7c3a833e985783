// Package iofs provides file system operations of kgraft: application
// directories, the configuration file, reading of input files and writing
// of output files.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/kgraft/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml to the config directory
// if it does not exist yet. An existing file is checked to be valid YAML.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return CheckConfigFile(configPath)
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// CheckConfigFile makes sure the file at path can be decoded into Config.
func CheckConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadFileError(path, err)
	}

	var cfg config.Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return ReadFileError(path, err)
	}
	return nil
}
