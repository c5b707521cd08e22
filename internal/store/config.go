package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/quest/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".questconfig.yaml"

	// DefaultDataFile is the quest file used when no override is given.
	DefaultDataFile = "quests.json"
)

// Config represents user configuration from .questconfig.yaml.
// This file is user-managed and never written by quest.
type Config struct {
	// DataFile is the quest file path used when --file is not specified.
	DataFile string `yaml:"data_file"`

	// DefaultPriority is the priority for `quest add` when --priority is
	// not specified. Accepts the same spellings as the flag.
	DefaultPriority string `yaml:"default_priority"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:        DefaultDataFile,
		DefaultPriority: string(model.PriorityMedium),
	}
}

// LoadConfig loads .questconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	p, err := model.ParsePriority(cfg.DefaultPriority)
	if err != nil {
		return nil, fmt.Errorf("invalid default_priority %q in %s", cfg.DefaultPriority, userConfigFile)
	}
	cfg.DefaultPriority = string(p)

	return cfg, nil
}
