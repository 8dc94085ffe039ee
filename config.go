package gsh

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user-adjustable behavior of the shell, loaded from
// ~/.gshrc.yaml when present. Absent keys keep their defaults.
type Config struct {
	// PromptSuffix is printed after the working directory in the prompt.
	PromptSuffix string `yaml:"prompt_suffix"`
	// Color enables ANSI coloring of the prompt.
	Color bool `yaml:"color"`
	// Verbose enables debug-level diagnostics.
	Verbose bool `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		PromptSuffix: "$ ",
		Color:        true,
	}
}

// DefaultConfigPath returns the conventional config location under the
// user's home directory, or "" when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gshrc.yaml")
}

// LoadConfig reads the config file at path, falling back to
// DefaultConfigPath when path is empty. A missing file is not an error;
// the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
