package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for leakscan. Pointer
// fields distinguish "unset" from zero values when merging with CLI flags.
type FileConfig struct {
	Patterns        []string `yaml:"patterns"`
	Exclude         []string `yaml:"exclude"`
	ExcludeGlob     []string `yaml:"exclude_glob"`
	Recursive       *bool    `yaml:"recursive"`
	DefaultExcludes *bool    `yaml:"default_excludes"`
	NoColor         *bool    `yaml:"no_color"`
	FailOnFindings  *bool    `yaml:"fail_on_findings"`
	Output          *string  `yaml:"output"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .leakscan.yml/.yaml and leakscan.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".leakscan.yml", ".leakscan.yaml", "leakscan.yml", "leakscan.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "leakscan", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
