package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const defaultFileName = ".raport.json"

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `json:"log"`
	Filters FilterConfig  `json:"filters"`
	Console ConsoleConfig `json:"console"`
}

// LogConfig controls how each repository's history is read.
type LogConfig struct {
	// FlushTrailingCommit emits the last commit of a log. Off by default:
	// a commit is only emitted once the next commit line has been read.
	FlushTrailingCommit bool   `json:"flushTrailingCommit"`
	Reader              string `json:"reader"`     // Default: "git-cli"
	RemoteName          string `json:"remoteName"` // Default: "origin"
}

// FilterConfig holds repository path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// ConsoleConfig holds operator output options.
type ConsoleConfig struct {
	Progress bool `json:"progress"`
	Quiet    bool `json:"quiet"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			FlushTrailingCommit: false,
			Reader:              "git-cli",
			RemoteName:          "origin",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{defaultFileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, defaultFileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, defaultFileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
