package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a lintgate configuration from the given YAML file
// path. After parsing, it applies defaults to tools that don't specify their
// own values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault searches for a config in standard locations and loads the
// first one found. Search order: ./lintgate.yaml, ~/.lintgate/config.yaml
func LoadDefault() (*Config, error) {
	candidates := []string{"lintgate.yaml"}

	home, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(home, ".lintgate", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return nil, fmt.Errorf("no lintgate config found (searched: %v)", candidates)
}

// applyDefaults fills in the working root and merges default timeouts into
// tools that don't set their own.
func applyDefaults(cfg *Config) {
	l := &cfg.Lint

	if l.WorkingRoot == "" {
		l.WorkingRoot = "."
	}

	if l.Defaults.Timeout == "" {
		return
	}
	for name, tool := range l.Tools {
		if tool.Timeout == "" {
			tool.Timeout = l.Defaults.Timeout
			l.Tools[name] = tool
		}
	}
}
